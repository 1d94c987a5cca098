package fiscal_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios do motor fiscal. O fakeTxRunner passa os
// fakes sobre o mesmo store à função, tal como o TxRunner real passa repos
// atados à transação.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	docs      map[string]*entity.DocumentoFiscal
	itens     map[string][]*entity.ItemDocumento
	vinculos  []*entity.AdiantamentoFatura
	produtos  map[string]*entity.Produto
	clientes  map[string]*entity.Cliente
	vendas    map[string]*entity.Venda
	movs      []*entity.MovimentoStock
	series    map[string]int64
	ordemDocs []string // ordem de criação, para UltimoHash
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:     map[string]*entity.DocumentoFiscal{},
		itens:    map[string][]*entity.ItemDocumento{},
		produtos: map[string]*entity.Produto{},
		clientes: map[string]*entity.Cliente{},
		vendas:   map[string]*entity.Venda{},
		series:   map[string]int64{},
	}
}

// ── DocumentoFiscalRepository ────────────────────────────────────────────────

type fakeDocRepo struct{ s *fakeStore }

func (r *fakeDocRepo) Create(doc *entity.DocumentoFiscal) error {
	r.s.docs[doc.ID] = doc
	r.s.ordemDocs = append(r.s.ordemDocs, doc.ID)
	return nil
}

func (r *fakeDocRepo) CreateItem(item *entity.ItemDocumento) error {
	r.s.itens[item.DocumentoID] = append(r.s.itens[item.DocumentoID], item)
	return nil
}

func (r *fakeDocRepo) GetByID(id string) (*entity.DocumentoFiscal, error) {
	return r.s.docs[id], nil
}

func (r *fakeDocRepo) GetItens(documentoID string) ([]*entity.ItemDocumento, error) {
	return r.s.itens[documentoID], nil
}

func (r *fakeDocRepo) UpdateEstado(id string, estado entity.EstadoDocumento, motivo string) error {
	doc := r.s.docs[id]
	doc.Estado = estado
	if motivo != "" {
		doc.MotivoCancelamento = motivo
	}
	return nil
}

func (r *fakeDocRepo) ListByEmpresa(empresaID string, filtro repository.DocumentoFiscalFiltro) ([]*entity.DocumentoFiscal, int, error) {
	var out []*entity.DocumentoFiscal
	for _, id := range r.s.ordemDocs {
		doc := r.s.docs[id]
		if doc.EmpresaID != empresaID {
			continue
		}
		if filtro.Tipo != "" && doc.TipoDocumento != filtro.Tipo {
			continue
		}
		if filtro.Estado != "" && doc.Estado != filtro.Estado {
			continue
		}
		if filtro.ClienteID != "" && doc.ClienteID != filtro.ClienteID {
			continue
		}
		out = append(out, doc)
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) ListDerivados(documentoID string) ([]*entity.DocumentoFiscal, error) {
	var out []*entity.DocumentoFiscal
	for _, id := range r.s.ordemDocs {
		if r.s.docs[id].FaturaID == documentoID {
			out = append(out, r.s.docs[id])
		}
	}
	return out, nil
}

func (r *fakeDocRepo) SomaRecibos(documentoID string) (decimal.Decimal, error) {
	soma := decimal.Zero
	for _, doc := range r.s.docs {
		if doc.TipoDocumento == entity.TipoRC && doc.FaturaID == documentoID && doc.Estado != entity.EstadoCancelado {
			soma = soma.Add(doc.TotalLiquido)
		}
	}
	return soma, nil
}

func (r *fakeDocRepo) UltimoHash(empresaID, serie string, tipo entity.TipoDocumento) (string, error) {
	for i := len(r.s.ordemDocs) - 1; i >= 0; i-- {
		doc := r.s.docs[r.s.ordemDocs[i]]
		if doc.EmpresaID == empresaID && doc.Serie == serie && doc.TipoDocumento == tipo {
			return doc.HashFiscal, nil
		}
	}
	return "", nil
}

func (r *fakeDocRepo) ListFAExpiraveis(empresaID string, ref time.Time) ([]*entity.DocumentoFiscal, error) {
	var out []*entity.DocumentoFiscal
	for _, id := range r.s.ordemDocs {
		doc := r.s.docs[id]
		if doc.EmpresaID == empresaID && doc.Expirou(ref) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// ── SerieRepository ──────────────────────────────────────────────────────────

type fakeSerieRepo struct{ s *fakeStore }

func (r *fakeSerieRepo) ProximoNumero(empresaID, codigo string, tipo entity.TipoDocumento) (int64, error) {
	chave := empresaID + "|" + codigo + "|" + string(tipo)
	r.s.series[chave]++
	return r.s.series[chave], nil
}

func (r *fakeSerieRepo) ListByEmpresa(empresaID string) ([]*entity.Serie, error) {
	return nil, nil
}

// ── AdiantamentoRepository ───────────────────────────────────────────────────

type fakeAdiantRepo struct{ s *fakeStore }

func (r *fakeAdiantRepo) CreateVinculo(v *entity.AdiantamentoFatura) error {
	r.s.vinculos = append(r.s.vinculos, v)
	return nil
}

func (r *fakeAdiantRepo) SomaUtilizado(adiantamentoID string) (decimal.Decimal, error) {
	soma := decimal.Zero
	for _, v := range r.s.vinculos {
		if v.AdiantamentoID == adiantamentoID {
			soma = soma.Add(v.ValorUtilizado)
		}
	}
	return soma, nil
}

func (r *fakeAdiantRepo) SomaVinculadoAFatura(faturaID string) (decimal.Decimal, error) {
	soma := decimal.Zero
	for _, v := range r.s.vinculos {
		if v.FaturaID == faturaID {
			soma = soma.Add(v.ValorUtilizado)
		}
	}
	return soma, nil
}

func (r *fakeAdiantRepo) ListByFatura(faturaID string) ([]*entity.AdiantamentoFatura, error) {
	var out []*entity.AdiantamentoFatura
	for _, v := range r.s.vinculos {
		if v.FaturaID == faturaID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeAdiantRepo) ListByAdiantamento(adiantamentoID string) ([]*entity.AdiantamentoFatura, error) {
	var out []*entity.AdiantamentoFatura
	for _, v := range r.s.vinculos {
		if v.AdiantamentoID == adiantamentoID {
			out = append(out, v)
		}
	}
	return out, nil
}

// ── MovimentoStockRepository ─────────────────────────────────────────────────

type fakeMovRepo struct{ s *fakeStore }

func (r *fakeMovRepo) Create(mov *entity.MovimentoStock) error {
	r.s.movs = append(r.s.movs, mov)
	return nil
}

func (r *fakeMovRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentoStock, int, error) {
	var out []*entity.MovimentoStock
	for _, m := range r.s.movs {
		if m.ProdutoID == produtoID {
			out = append(out, m)
		}
	}
	return out, len(out), nil
}

func (r *fakeMovRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.MovimentoStock, int, error) {
	return r.s.movs, len(r.s.movs), nil
}

// ── ProdutoRepository ────────────────────────────────────────────────────────

type fakeProdutoRepo struct{ s *fakeStore }

func (r *fakeProdutoRepo) Create(p *entity.Produto) error { r.s.produtos[p.ID] = p; return nil }

func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.s.produtos[id], nil
}

func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.s.produtos[id], nil
}

func (r *fakeProdutoRepo) GetByEmpresaECodigo(empresaID, codigo string) (*entity.Produto, error) {
	for _, p := range r.s.produtos {
		if p.EmpresaID == empresaID && p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProdutoRepo) Update(p *entity.Produto) error { r.s.produtos[p.ID] = p; return nil }

func (r *fakeProdutoRepo) UpdateEstoque(produtoID string, estoque decimal.Decimal) error {
	r.s.produtos[produtoID].EstoqueAtual = estoque
	return nil
}

func (r *fakeProdutoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Produto, int, error) {
	return nil, 0, nil
}

func (r *fakeProdutoRepo) ListStockBaixo(empresaID string) ([]*entity.Produto, error) {
	return nil, nil
}

func (r *fakeProdutoRepo) Delete(id string) error { delete(r.s.produtos, id); return nil }

// ── ClienteRepository ────────────────────────────────────────────────────────

type fakeClienteRepo struct{ s *fakeStore }

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { r.s.clientes[c.ID] = c; return nil }

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.s.clientes[id], nil
}

func (r *fakeClienteRepo) GetByEmpresaENIF(empresaID, nif string) (*entity.Cliente, error) {
	return nil, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error { return nil }

func (r *fakeClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, int, error) {
	return nil, 0, nil
}

func (r *fakeClienteRepo) Delete(id string) error { return nil }

// ── VendaRepository ──────────────────────────────────────────────────────────

type fakeVendaRepo struct{ s *fakeStore }

func (r *fakeVendaRepo) Create(v *entity.Venda) error          { r.s.vendas[v.ID] = v; return nil }
func (r *fakeVendaRepo) CreateItem(item *entity.ItemVenda) error { return nil }

func (r *fakeVendaRepo) GetByID(id string) (*entity.Venda, error) {
	return r.s.vendas[id], nil
}

func (r *fakeVendaRepo) GetItens(vendaID string) ([]*entity.ItemVenda, error) { return nil, nil }

func (r *fakeVendaRepo) UpdateEstado(id string, estado string) error {
	r.s.vendas[id].Estado = estado
	return nil
}

func (r *fakeVendaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Venda, int, error) {
	return nil, 0, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentoFiscalRepository,
	serieRepo repository.SerieRepository,
	adiantRepo repository.AdiantamentoRepository,
	movRepo repository.MovimentoStockRepository,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	return fn(&fakeDocRepo{r.s}, &fakeSerieRepo{r.s}, &fakeAdiantRepo{r.s}, &fakeMovRepo{r.s}, &fakeProdutoRepo{r.s}, &fakeVendaRepo{r.s})
}
