package vendas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/vendas"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
)

type fakeStore struct {
	produtos map[string]*entity.Produto
	clientes map[string]*entity.Cliente
	vendas   map[string]*entity.Venda
	itens    map[string][]*entity.ItemVenda
}

type fakeVendaRepo struct{ s *fakeStore }

func (r *fakeVendaRepo) Create(v *entity.Venda) error { r.s.vendas[v.ID] = v; return nil }
func (r *fakeVendaRepo) CreateItem(item *entity.ItemVenda) error {
	r.s.itens[item.VendaID] = append(r.s.itens[item.VendaID], item)
	return nil
}
func (r *fakeVendaRepo) GetByID(id string) (*entity.Venda, error)        { return r.s.vendas[id], nil }
func (r *fakeVendaRepo) GetItens(vendaID string) ([]*entity.ItemVenda, error) {
	return r.s.itens[vendaID], nil
}
func (r *fakeVendaRepo) UpdateEstado(id string, estado string) error {
	r.s.vendas[id].Estado = estado
	return nil
}
func (r *fakeVendaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Venda, int, error) {
	var out []*entity.Venda
	for _, v := range r.s.vendas {
		if v.EmpresaID == empresaID {
			out = append(out, v)
		}
	}
	return out, len(out), nil
}

type fakeProdutoRepo struct{ s *fakeStore }

func (r *fakeProdutoRepo) Create(p *entity.Produto) error             { return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) { return r.s.produtos[id], nil }
func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.s.produtos[id], nil
}
func (r *fakeProdutoRepo) GetByEmpresaECodigo(empresaID, codigo string) (*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error { return nil }
func (r *fakeProdutoRepo) UpdateEstoque(produtoID string, estoque decimal.Decimal) error {
	return nil
}
func (r *fakeProdutoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Produto, int, error) {
	return nil, 0, nil
}
func (r *fakeProdutoRepo) ListStockBaixo(empresaID string) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) Delete(id string) error { return nil }

type fakeClienteRepo struct{ s *fakeStore }

func (r *fakeClienteRepo) Create(c *entity.Cliente) error             { return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) { return r.s.clientes[id], nil }
func (r *fakeClienteRepo) GetByEmpresaENIF(empresaID, nif string) (*entity.Cliente, error) {
	return nil, nil
}
func (r *fakeClienteRepo) Update(c *entity.Cliente) error { return nil }
func (r *fakeClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, int, error) {
	return nil, 0, nil
}
func (r *fakeClienteRepo) Delete(id string) error { return nil }

// fakeEmissor grava o pedido recebido e simula a emissão (marca a venda como
// faturada, tal como o motor fiscal faz na sua transação).
type fakeEmissor struct {
	s      *fakeStore
	ultimo *dto.EmitirDocumentoRequest
	falhar error
}

func (e *fakeEmissor) Emitir(ctx context.Context, empresaID, userID string, in dto.EmitirDocumentoRequest) (*dto.DocumentoResponse, error) {
	e.ultimo = &in
	if e.falhar != nil {
		return nil, e.falhar
	}
	if in.VendaID != "" {
		e.s.vendas[in.VendaID].Estado = entity.VendaFaturada
	}
	return &dto.DocumentoResponse{ID: "doc-1", TipoDocumento: in.TipoDocumento, Estado: "emitido"}, nil
}

func newTestUseCase() (*vendas.UseCase, *fakeStore, *fakeEmissor) {
	s := &fakeStore{
		produtos: map[string]*entity.Produto{},
		clientes: map[string]*entity.Cliente{},
		vendas:   map[string]*entity.Venda{},
		itens:    map[string][]*entity.ItemVenda{},
	}
	emissor := &fakeEmissor{s: s}
	uc := vendas.NewUseCase(&fakeVendaRepo{s}, &fakeProdutoRepo{s}, &fakeClienteRepo{s}, emissor)
	return uc, s, emissor
}

func seedProduto(s *fakeStore, id string, preco, iva int64) {
	s.produtos[id] = &entity.Produto{
		ID:         id,
		EmpresaID:  "emp-1",
		Nome:       "Produto " + id,
		Tipo:       entity.TipoProdutoFisico,
		PrecoVenda: decimal.NewFromInt(preco),
		TaxaIVA:    decimal.NewFromInt(iva),
	}
}

func TestCriarVenda_CalculaTotais(t *testing.T) {
	uc, s, _ := newTestUseCase()
	seedProduto(s, "prod-1", 100, 14)

	// 10 × 100 com 10% de desconto: bruto 1000, base 900, IVA 126
	resp, err := uc.CriarVenda(context.Background(), "emp-1", "user-1", dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: "prod-1", Quantidade: decimal.NewFromInt(10), Desconto: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VendaPendente, resp.Estado)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(1000)), "subtotal: %s", resp.Subtotal)
	assert.True(t, resp.TotalDesconto.Equal(decimal.NewFromInt(100)), "desconto: %s", resp.TotalDesconto)
	assert.True(t, resp.TotalIVA.Equal(decimal.NewFromInt(126)), "iva: %s", resp.TotalIVA)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(1026)), "total: %s", resp.Total)
	require.Len(t, resp.Itens, 1)
	assert.True(t, resp.Itens[0].PrecoUnitario.Equal(decimal.NewFromInt(100)), "preço por defeito do catálogo")
}

func TestCriarVenda_SemLinhas(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.CriarVenda(context.Background(), "emp-1", "user-1", dto.CriarVendaRequest{})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
}

func TestFaturar_DelegaNoMotorFiscal(t *testing.T) {
	uc, s, emissor := newTestUseCase()
	seedProduto(s, "prod-1", 100, 14)

	venda, err := uc.CriarVenda(context.Background(), "emp-1", "user-1", dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: "prod-1", Quantidade: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	doc, err := uc.Faturar(context.Background(), "emp-1", "user-1", venda.ID, dto.FaturarVendaRequest{
		TipoDocumento: "FT",
	})
	require.NoError(t, err)
	assert.Equal(t, "FT", doc.TipoDocumento)
	assert.Equal(t, entity.VendaFaturada, s.vendas[venda.ID].Estado)

	require.NotNil(t, emissor.ultimo)
	assert.Equal(t, venda.ID, emissor.ultimo.VendaID)
	require.Len(t, emissor.ultimo.Itens, 1)
	assert.Equal(t, "prod-1", emissor.ultimo.Itens[0].ProdutoID)
}

func TestFaturar_VendaJaFaturada(t *testing.T) {
	uc, s, _ := newTestUseCase()
	seedProduto(s, "prod-1", 100, 14)

	venda, err := uc.CriarVenda(context.Background(), "emp-1", "user-1", dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: "prod-1", Quantidade: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	s.vendas[venda.ID].Estado = entity.VendaFaturada

	_, err = uc.Faturar(context.Background(), "emp-1", "user-1", venda.ID, dto.FaturarVendaRequest{
		TipoDocumento: "FT",
	})
	require.ErrorIs(t, err, domain.ErrDocumentoFechado)
}

func TestFaturar_TipoInvalido(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Faturar(context.Background(), "emp-1", "user-1", "qualquer", dto.FaturarVendaRequest{
		TipoDocumento: "FP",
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
}

func TestCancelarVenda(t *testing.T) {
	uc, s, _ := newTestUseCase()
	seedProduto(s, "prod-1", 100, 14)

	venda, err := uc.CriarVenda(context.Background(), "emp-1", "user-1", dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: "prod-1", Quantidade: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.CancelarVenda(context.Background(), "emp-1", venda.ID))
	assert.Equal(t, entity.VendaCancelada, s.vendas[venda.ID].Estado)

	// cancelada não volta a faturar-se
	_, err = uc.Faturar(context.Background(), "emp-1", "user-1", venda.ID, dto.FaturarVendaRequest{TipoDocumento: "FR"})
	require.ErrorIs(t, err, domain.ErrDocumentoFechado)
}
