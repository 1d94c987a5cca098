package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/stock"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

type fakeStore struct {
	produtos map[string]*entity.Produto
	movs     []*entity.MovimentoStock
}

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

type fakeProdutoRepo struct{ s *fakeStore }

func (r *fakeProdutoRepo) Create(p *entity.Produto) error                 { r.s.produtos[p.ID] = p; return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error)     { return r.s.produtos[id], nil }
func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.s.produtos[id], nil
}
func (r *fakeProdutoRepo) GetByEmpresaECodigo(empresaID, codigo string) (*entity.Produto, error) {
	return nil, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error { return nil }
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
func (r *fakeProdutoRepo) Delete(id string) error { return nil }

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentoStockRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	return fn(&fakeMovRepo{r.s}, &fakeProdutoRepo{r.s})
}

func newTestUseCase() (*stock.UseCase, *fakeStore) {
	s := &fakeStore{produtos: map[string]*entity.Produto{}}
	uc := stock.NewUseCase(&fakeTxRunner{s}, &fakeMovRepo{s}, &fakeProdutoRepo{s})
	return uc, s
}

func seedProduto(s *fakeStore, id string, tipo string, estoque int64) {
	s.produtos[id] = &entity.Produto{
		ID:           id,
		EmpresaID:    "emp-1",
		Nome:         "Produto " + id,
		Tipo:         tipo,
		EstoqueAtual: decimal.NewFromInt(estoque),
	}
}

func TestRegistarMovimento_EntradaPorCompra(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 10)

	resp, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "prod-1",
		Tipo:          entity.MovimentoEntrada,
		TipoMovimento: entity.TipoMovimentoCompra,
		Quantidade:    decimal.NewFromInt(5),
		Referencia:    "GR 2026/14",
	})
	require.NoError(t, err)
	assert.True(t, resp.EstoqueAnterior.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.EstoqueNovo.Equal(decimal.NewFromInt(15)))
	assert.True(t, s.produtos["prod-1"].EstoqueAtual.Equal(decimal.NewFromInt(15)))
}

func TestRegistarMovimento_LivroEncadeado(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 0)

	quantidades := []int64{5, 3, 7}
	for _, q := range quantidades {
		_, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
			ProdutoID:     "prod-1",
			Tipo:          entity.MovimentoEntrada,
			TipoMovimento: entity.TipoMovimentoCompra,
			Quantidade:    decimal.NewFromInt(q),
		})
		require.NoError(t, err)
	}

	// estoque_novo do movimento N é o estoque_anterior do movimento N+1
	require.Len(t, s.movs, 3)
	for i := 1; i < len(s.movs); i++ {
		assert.True(t, s.movs[i].EstoqueAnterior.Equal(s.movs[i-1].EstoqueNovo))
	}
	assert.True(t, s.produtos["prod-1"].EstoqueAtual.Equal(s.movs[2].EstoqueNovo))
}

func TestRegistarMovimento_SaidaPorAjuste(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 10)

	_, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "prod-1",
		Tipo:          entity.MovimentoSaida,
		TipoMovimento: entity.TipoMovimentoAjuste,
		Quantidade:    decimal.NewFromInt(4),
		Observacoes:   "quebra em armazém",
	})
	require.NoError(t, err)
	assert.True(t, s.produtos["prod-1"].EstoqueAtual.Equal(decimal.NewFromInt(6)))
}

func TestRegistarMovimento_SaidaAcimaDoStock(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 3)

	_, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "prod-1",
		Tipo:          entity.MovimentoSaida,
		TipoMovimento: entity.TipoMovimentoAjuste,
		Quantidade:    decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Empty(t, s.movs)
	assert.True(t, s.produtos["prod-1"].EstoqueAtual.Equal(decimal.NewFromInt(3)))
}

func TestRegistarMovimento_CompraTemDeSerEntrada(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 10)

	_, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "prod-1",
		Tipo:          entity.MovimentoSaida,
		TipoMovimento: entity.TipoMovimentoCompra,
		Quantidade:    decimal.NewFromInt(1),
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
}

func TestRegistarMovimento_VendaManualRejeitada(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 10)

	_, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "prod-1",
		Tipo:          entity.MovimentoSaida,
		TipoMovimento: entity.TipoMovimentoVenda,
		Quantidade:    decimal.NewFromInt(1),
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Campos, "tipo_movimento")
}

func TestRegistarMovimento_ServicoNaoTemStock(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "serv-1", entity.TipoProdutoServico, 0)

	_, err := uc.RegistarMovimento(context.Background(), "emp-1", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "serv-1",
		Tipo:          entity.MovimentoEntrada,
		TipoMovimento: entity.TipoMovimentoCompra,
		Quantidade:    decimal.NewFromInt(1),
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
}

func TestRegistarMovimento_OutraEmpresa(t *testing.T) {
	uc, s := newTestUseCase()
	seedProduto(s, "prod-1", entity.TipoProdutoFisico, 10)

	_, err := uc.RegistarMovimento(context.Background(), "outra-empresa", "user-1", dto.RegistarMovimentoRequest{
		ProdutoID:     "prod-1",
		Tipo:          entity.MovimentoEntrada,
		TipoMovimento: entity.TipoMovimentoCompra,
		Quantidade:    decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
}
