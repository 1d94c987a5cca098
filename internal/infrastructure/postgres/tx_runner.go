package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omunga/faturacao-api/internal/application/fiscal"
	"github.com/omunga/faturacao-api/internal/application/stock"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ fiscal.TxRunner = (*TxRunner)(nil)

// TxRunner executa o motor fiscal dentro de uma transação: documento, itens,
// numeração da série, vínculos e movimentos de stock num único commit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner transacional do motor fiscal.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre uma transação, constrói os repositórios atados a ela e invoca fn.
// Qualquer erro de fn faz rollback de tudo.
func (t *TxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentoFiscalRepository,
	serieRepo repository.SerieRepository,
	adiantRepo repository.AdiantamentoRepository,
	movRepo repository.MovimentoStockRepository,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(
		NewDocumentoFiscalRepository(tx),
		NewSerieRepository(tx),
		NewAdiantamentoRepository(tx),
		NewMovimentoStockRepository(tx),
		NewProdutoRepository(tx),
		NewVendaRepository(tx),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ stock.TxRunner = (*StockTxRunner)(nil)

// StockTxRunner executa movimentos manuais de stock dentro de uma transação:
// o bloqueio do produto, a atualização de estoque e a linha do livro são um
// único commit.
type StockTxRunner struct {
	pool *pgxpool.Pool
}

// NewStockTxRunner constrói o runner transacional de movimentos de stock.
func NewStockTxRunner(pool *pgxpool.Pool) *StockTxRunner {
	return &StockTxRunner{pool: pool}
}

// Run abre uma transação e invoca fn com os repositórios atados a ela.
func (t *StockTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentoStockRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewMovimentoStockRepository(tx), NewProdutoRepository(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
