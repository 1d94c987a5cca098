package fiscal

import (
	"context"

	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. É o que garante a atomicidade do
// motor fiscal: documento + itens + numeração + movimentos de stock são um
// único commit, e qualquer erro faz rollback de tudo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentoFiscalRepository,
		serieRepo repository.SerieRepository,
		adiantRepo repository.AdiantamentoRepository,
		movRepo repository.MovimentoStockRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error) error
}
