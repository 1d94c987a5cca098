package dto

import "github.com/shopspring/decimal"

// RegistarMovimentoRequest body para POST /api/stock/movimentos.
// A API só aceita movimentos manuais (compra, ajuste, devolução); as saídas
// por venda são registadas pelo motor fiscal na emissão do documento.
type RegistarMovimentoRequest struct {
	ProdutoID     string          `json:"produto_id"`
	Tipo          string          `json:"tipo"`           // entrada | saida
	TipoMovimento string          `json:"tipo_movimento"` // compra | ajuste | devolucao
	Quantidade    decimal.Decimal `json:"quantidade"`
	Referencia    string          `json:"referencia,omitempty"`
	Observacoes   string          `json:"observacoes,omitempty"`
}

// MovimentoStockResponse uma linha do livro de stock.
type MovimentoStockResponse struct {
	ID              string          `json:"id"`
	ProdutoID       string          `json:"produto_id"`
	Tipo            string          `json:"tipo"`
	TipoMovimento   string          `json:"tipo_movimento"`
	Quantidade      decimal.Decimal `json:"quantidade"`
	EstoqueAnterior decimal.Decimal `json:"estoque_anterior"`
	EstoqueNovo     decimal.Decimal `json:"estoque_novo"`
	Referencia      string          `json:"referencia,omitempty"`
	Observacoes     string          `json:"observacoes,omitempty"`
	CreatedAt       string          `json:"created_at"`
}
