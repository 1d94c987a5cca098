package repository

import (
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência de Produto.
// Delete é soft delete (deleted_at); as leituras excluem eliminados.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetByIDForUpdate bloqueia a linha do produto (SELECT ... FOR UPDATE);
	// usar apenas dentro de transação, antes de mexer no stock.
	GetByIDForUpdate(id string) (*entity.Produto, error)
	GetByEmpresaECodigo(empresaID, codigo string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	UpdateEstoque(produtoID string, estoque decimal.Decimal) error
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Produto, int, error)
	// ListStockBaixo devolve produtos físicos com estoque_atual <= estoque_minimo.
	ListStockBaixo(empresaID string) ([]*entity.Produto, error)
	Delete(id string) error
}
