package stock

import (
	"context"

	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando os
// repositórios de stock atados a essa transação. O bloqueio da linha do
// produto e a escrita do movimento têm de ser um único commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentoStockRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
