package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/domain/fiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo de linhas e totais
//
// Cenário de referência: FT com 2 linhas
//   1 × 1000 Kz a 14% de IVA  → base 1000, IVA 140
//   2 ×  500 Kz a  0% de IVA  → base 1000, IVA 0
// Totais esperados: base 2000, IVA 140, líquido 2140.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalcularLinha_IVASemDesconto(t *testing.T) {
	l := fiscal.CalcularLinha(d("1"), d("1000"), d("14"), decimal.Zero, decimal.Zero)
	assert.True(t, l.TotalLinha.Equal(d("1000")), "total da linha: %s", l.TotalLinha)
	assert.True(t, l.ValorIVA.Equal(d("140")), "IVA da linha: %s", l.ValorIVA)
	assert.True(t, l.ValorRetencao.IsZero())
}

func TestCalcularLinha_DescontoPercentual(t *testing.T) {
	// 4 × 250 com 10% de desconto = 900; IVA 14% sobre a base com desconto
	l := fiscal.CalcularLinha(d("4"), d("250"), d("14"), d("10"), decimal.Zero)
	assert.True(t, l.TotalLinha.Equal(d("900")), "total da linha: %s", l.TotalLinha)
	assert.True(t, l.ValorIVA.Equal(d("126")), "IVA da linha: %s", l.ValorIVA)
}

func TestCalcularLinha_RetencaoServico(t *testing.T) {
	// serviço de 20000 com retenção de 6.5%
	l := fiscal.CalcularLinha(d("1"), d("20000"), d("14"), decimal.Zero, d("6.5"))
	assert.True(t, l.ValorRetencao.Equal(d("1300")), "retenção: %s", l.ValorRetencao)
}

func TestCalcularLinha_TaxaComoFracao(t *testing.T) {
	// 0.14 e 14 devem produzir o mesmo IVA
	frac := fiscal.CalcularLinha(d("1"), d("1000"), d("0.14"), decimal.Zero, decimal.Zero)
	perc := fiscal.CalcularLinha(d("1"), d("1000"), d("14"), decimal.Zero, decimal.Zero)
	assert.True(t, frac.ValorIVA.Equal(perc.ValorIVA))
}

func TestAgregarLinhas_ExemploReferencia(t *testing.T) {
	linhas := []fiscal.LinhaCalculada{
		fiscal.CalcularLinha(d("1"), d("1000"), d("14"), decimal.Zero, decimal.Zero),
		fiscal.CalcularLinha(d("2"), d("500"), decimal.Zero, decimal.Zero, decimal.Zero),
	}
	tot := fiscal.AgregarLinhas(linhas)
	assert.True(t, tot.BaseTributavel.Equal(d("2000")), "base: %s", tot.BaseTributavel)
	assert.True(t, tot.TotalIVA.Equal(d("140")), "iva: %s", tot.TotalIVA)
	assert.True(t, tot.TotalRetencao.IsZero())
	assert.True(t, tot.TotalLiquido.Equal(d("2140")), "líquido: %s", tot.TotalLiquido)
}

func TestAgregarLinhas_LiquidoDescontaRetencao(t *testing.T) {
	linhas := []fiscal.LinhaCalculada{
		fiscal.CalcularLinha(d("1"), d("10000"), d("14"), decimal.Zero, d("6.5")),
	}
	tot := fiscal.AgregarLinhas(linhas)
	// 10000 + 1400 − 650 = 10750
	require.True(t, tot.TotalLiquido.Equal(d("10750")), "líquido: %s", tot.TotalLiquido)
	esperado := tot.BaseTributavel.Add(tot.TotalIVA).Sub(tot.TotalRetencao)
	assert.True(t, tot.TotalLiquido.Sub(esperado).Abs().LessThanOrEqual(d("0.01")))
}
