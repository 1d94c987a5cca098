package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sentido do movimento de stock.
const (
	MovimentoEntrada = "entrada"
	MovimentoSaida   = "saida"
)

// Origem do movimento.
const (
	TipoMovimentoCompra    = "compra"
	TipoMovimentoVenda     = "venda"
	TipoMovimentoAjuste    = "ajuste"
	TipoMovimentoDevolucao = "devolucao"
)

// MovimentoStock é uma entrada do livro de stock (append-only). Cada linha
// captura estoque_anterior → estoque_novo; o estoque_novo do movimento N é o
// estoque_anterior do movimento N+1 do mesmo produto, e produto.estoque_atual
// é sempre o estoque_novo do movimento mais recente.
type MovimentoStock struct {
	ID              string
	EmpresaID       string
	ProdutoID       string
	Tipo            string // entrada | saida
	TipoMovimento   string // compra | venda | ajuste | devolucao
	Quantidade      decimal.Decimal
	EstoqueAnterior decimal.Decimal
	EstoqueNovo     decimal.Decimal
	Referencia      string // documento fiscal, venda ou nota de ajuste
	Observacoes     string
	CreatedAt       time.Time
	CreatedBy       string // UserID
}
