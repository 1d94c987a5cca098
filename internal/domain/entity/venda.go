package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados da venda.
const (
	VendaPendente  = "pendente"
	VendaFaturada  = "faturada"
	VendaCancelada = "cancelada"
)

// Venda agrupa linhas de venda e os subtotais de imposto e desconto.
// A faturação (FT/FR) passa pelo motor fiscal e liga-se via VendaID.
type Venda struct {
	ID            string
	EmpresaID     string
	ClienteID     string
	Estado        string
	Subtotal      decimal.Decimal
	TotalDesconto decimal.Decimal
	TotalIVA      decimal.Decimal
	Total         decimal.Decimal
	Observacoes   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// ItemVenda é uma linha de venda. Os valores seguem as mesmas regras de
// cálculo das linhas de documento fiscal.
type ItemVenda struct {
	ID            string
	VendaID       string
	ProdutoID     string
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
	TaxaIVA       decimal.Decimal
	Desconto      decimal.Decimal
	TotalLinha    decimal.Decimal
}
