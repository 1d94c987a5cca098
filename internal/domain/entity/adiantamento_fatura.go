package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdiantamentoFatura regista a utilização de um adiantamento (FA) numa
// fatura (FT). A soma dos ValorUtilizado de um FA nunca excede o seu
// total_liquido; do lado da FT, conta para o saldo pendente.
type AdiantamentoFatura struct {
	ID             string
	AdiantamentoID string // documento FA
	FaturaID       string // documento FT
	ValorUtilizado decimal.Decimal
	CreatedAt      time.Time
	CreatedBy      string
}
