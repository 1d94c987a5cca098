package dto

import "github.com/shopspring/decimal"

// ItemVendaRequest linha de uma venda a criar.
type ItemVendaRequest struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario,omitempty"` // por defeito o preço do produto
	Desconto      decimal.Decimal `json:"desconto,omitempty"`       // percentagem 0..100
}

// CriarVendaRequest body para POST /api/vendas.
type CriarVendaRequest struct {
	ClienteID   string             `json:"cliente_id,omitempty"`
	Observacoes string             `json:"observacoes,omitempty"`
	Itens       []ItemVendaRequest `json:"itens"`
}

// FaturarVendaRequest body para POST /api/vendas/:id/faturar.
type FaturarVendaRequest struct {
	TipoDocumento  string                 `json:"tipo_documento"` // FT | FR
	Serie          string                 `json:"serie,omitempty"`
	DataVencimento string                 `json:"data_vencimento,omitempty"`
	DadosPagamento *DadosPagamentoRequest `json:"dados_pagamento,omitempty"`
}

// ItemVendaResponse linha de venda na resposta.
type ItemVendaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	TaxaIVA       decimal.Decimal `json:"taxa_iva"`
	Desconto      decimal.Decimal `json:"desconto"`
	TotalLinha    decimal.Decimal `json:"total_linha"`
}

// VendaResponse venda com linhas e totais.
type VendaResponse struct {
	ID            string              `json:"id"`
	ClienteID     string              `json:"cliente_id,omitempty"`
	Estado        string              `json:"estado"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	TotalDesconto decimal.Decimal     `json:"total_desconto"`
	TotalIVA      decimal.Decimal     `json:"total_iva"`
	Total         decimal.Decimal     `json:"total"`
	Observacoes   string              `json:"observacoes,omitempty"`
	Itens         []ItemVendaResponse `json:"itens,omitempty"`
	CreatedAt     string              `json:"created_at"`
}
