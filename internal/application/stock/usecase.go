// Package stock implementa o livro de stock fora do motor fiscal: entradas
// por compra, devoluções e ajustes manuais, com o mesmo invariante do motor
// (estoque_anterior → estoque_novo encadeado por produto, nunca negativo).
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// UseCase regista e consulta movimentos de stock.
type UseCase struct {
	txRunner    TxRunner
	movRepo     repository.MovimentoStockRepository
	produtoRepo repository.ProdutoRepository
}

// NewUseCase constrói o caso de uso de stock.
func NewUseCase(txRunner TxRunner, movRepo repository.MovimentoStockRepository, produtoRepo repository.ProdutoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo, produtoRepo: produtoRepo}
}

// RegistarMovimento regista um movimento manual: bloqueia a linha do
// produto, valida o sentido e escreve movimento + novo estoque_atual na
// mesma transação.
//
// Saídas por venda não passam por aqui — são escritas pelo motor fiscal na
// emissão da FT/FR. O livro é append-only: movimentos nunca são corrigidos,
// um engano corrige-se com um movimento de ajuste em sentido contrário.
func (uc *UseCase) RegistarMovimento(ctx context.Context, empresaID, userID string, in dto.RegistarMovimentoRequest) (*dto.MovimentoStockResponse, error) {
	if in.ProdutoID == "" {
		return nil, domain.NewValidationError(map[string]string{"produto_id": "obrigatório"})
	}
	if in.Tipo != entity.MovimentoEntrada && in.Tipo != entity.MovimentoSaida {
		return nil, domain.NewValidationError(map[string]string{"tipo": "deve ser entrada ou saida"})
	}
	switch in.TipoMovimento {
	case entity.TipoMovimentoCompra, entity.TipoMovimentoDevolucao:
		if in.Tipo != entity.MovimentoEntrada {
			return nil, domain.NewValidationError(map[string]string{"tipo": "compra e devolução são entradas"})
		}
	case entity.TipoMovimentoAjuste:
		// ajuste admite ambos os sentidos
	case entity.TipoMovimentoVenda:
		return nil, domain.NewValidationError(map[string]string{"tipo_movimento": "saídas por venda são registadas pela emissão do documento"})
	default:
		return nil, domain.NewValidationError(map[string]string{"tipo_movimento": "deve ser compra, ajuste ou devolucao"})
	}
	if !in.Quantidade.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError(map[string]string{"quantidade": "deve ser positiva"})
	}

	var mov *entity.MovimentoStock
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentoStockRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := produtoRepo.GetByIDForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		if produto.EmpresaID != empresaID {
			return domain.ErrForbidden
		}
		if produto.EServico() {
			return domain.NewValidationError(map[string]string{"produto_id": "serviços não têm stock"})
		}

		anterior := produto.EstoqueAtual
		var novo decimal.Decimal
		if in.Tipo == entity.MovimentoEntrada {
			novo = anterior.Add(in.Quantidade)
		} else {
			if anterior.LessThan(in.Quantidade) {
				return domain.ErrStockInsuficiente
			}
			novo = anterior.Sub(in.Quantidade)
		}
		if err := produtoRepo.UpdateEstoque(produto.ID, novo); err != nil {
			return err
		}

		mov = &entity.MovimentoStock{
			ID:              uuid.New().String(),
			EmpresaID:       empresaID,
			ProdutoID:       produto.ID,
			Tipo:            in.Tipo,
			TipoMovimento:   in.TipoMovimento,
			Quantidade:      in.Quantidade,
			EstoqueAnterior: anterior,
			EstoqueNovo:     novo,
			Referencia:      in.Referencia,
			Observacoes:     in.Observacoes,
			CreatedAt:       time.Now(),
			CreatedBy:       userID,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimentoResponse(mov), nil
}

// HistoricoProduto devolve o livro do produto, do mais recente para o mais antigo.
func (uc *UseCase) HistoricoProduto(ctx context.Context, empresaID, produtoID string, page dto.PageRequest) ([]*dto.MovimentoStockResponse, int, error) {
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil || produto == nil {
		return nil, 0, domain.ErrNotFound
	}
	if produto.EmpresaID != empresaID {
		return nil, 0, domain.ErrForbidden
	}
	page.DefaultPage()
	movs, total, err := uc.movRepo.ListByProduto(produtoID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.MovimentoStockResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimentoResponse(m))
	}
	return out, total, nil
}

// ListMovimentos devolve o livro da empresa inteira, paginado.
func (uc *UseCase) ListMovimentos(ctx context.Context, empresaID string, page dto.PageRequest) ([]*dto.MovimentoStockResponse, int, error) {
	page.DefaultPage()
	movs, total, err := uc.movRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.MovimentoStockResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimentoResponse(m))
	}
	return out, total, nil
}

func toMovimentoResponse(m *entity.MovimentoStock) *dto.MovimentoStockResponse {
	return &dto.MovimentoStockResponse{
		ID:              m.ID,
		ProdutoID:       m.ProdutoID,
		Tipo:            m.Tipo,
		TipoMovimento:   m.TipoMovimento,
		Quantidade:      m.Quantidade,
		EstoqueAnterior: m.EstoqueAnterior,
		EstoqueNovo:     m.EstoqueNovo,
		Referencia:      m.Referencia,
		Observacoes:     m.Observacoes,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}
