package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// MovimentoStockRepository define o porto do livro de stock (append-only:
// movimentos nunca são alterados nem apagados).
type MovimentoStockRepository interface {
	Create(mov *entity.MovimentoStock) error
	ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentoStock, int, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.MovimentoStock, int, error)
}
