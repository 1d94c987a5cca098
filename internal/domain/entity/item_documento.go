package entity

import "github.com/shopspring/decimal"

// ItemDocumento representa uma linha de um documento fiscal. Pertence em
// exclusivo ao documento e é imutável após a emissão: correções passam por
// NC/ND, nunca por edição da linha.
type ItemDocumento struct {
	ID            string
	DocumentoID   string
	ProdutoID     string
	Descricao     string
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
	TaxaIVA       decimal.Decimal // percentagem: 0, 5, 7, 14
	Desconto      decimal.Decimal // percentagem sobre a linha
	ValorIVA      decimal.Decimal
	ValorRetencao decimal.Decimal
	TotalLinha    decimal.Decimal // quantidade × preço × (1 − desconto%)
}
