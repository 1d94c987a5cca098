// Package fiscal contém as regras de cálculo e identidade dos documentos
// fiscais: totais de linha e de documento, validação de NIF e a cadeia de
// hash de auditoria. Todas as funções são puras (sem IO).
package fiscal

import "github.com/shopspring/decimal"

var cem = decimal.NewFromInt(100)

// NormalizarTaxa aceita taxas como percentagem (14) ou fração (0.14) e
// devolve sempre a fração. Taxas acima de 1 são tratadas como percentagem.
func NormalizarTaxa(taxa decimal.Decimal) decimal.Decimal {
	if taxa.GreaterThan(decimal.NewFromInt(1)) {
		return taxa.Div(cem)
	}
	return taxa
}

// LinhaCalculada é o resultado do cálculo de uma linha.
type LinhaCalculada struct {
	TotalLinha    decimal.Decimal // quantidade × preço × (1 − desconto%)
	ValorIVA      decimal.Decimal
	ValorRetencao decimal.Decimal
}

// CalcularLinha aplica as regras de linha: desconto percentual sobre a base,
// IVA sobre a base com desconto, retenção (serviços) sobre a mesma base.
func CalcularLinha(quantidade, precoUnitario, taxaIVA, desconto, retencao decimal.Decimal) LinhaCalculada {
	base := quantidade.Mul(precoUnitario)
	if desconto.GreaterThan(decimal.Zero) {
		base = base.Mul(decimal.NewFromInt(1).Sub(NormalizarTaxa(desconto)))
	}
	return LinhaCalculada{
		TotalLinha:    base.Round(2),
		ValorIVA:      base.Mul(NormalizarTaxa(taxaIVA)).Round(2),
		ValorRetencao: base.Mul(NormalizarTaxa(retencao)).Round(2),
	}
}

// TotaisDocumento agrega os totais monetários de um documento.
type TotaisDocumento struct {
	BaseTributavel decimal.Decimal
	TotalIVA       decimal.Decimal
	TotalRetencao  decimal.Decimal
	TotalLiquido   decimal.Decimal // base + iva − retenção
}

// AgregarLinhas soma as linhas calculadas para os totais do documento.
func AgregarLinhas(linhas []LinhaCalculada) TotaisDocumento {
	var t TotaisDocumento
	t.BaseTributavel = decimal.Zero
	t.TotalIVA = decimal.Zero
	t.TotalRetencao = decimal.Zero
	for _, l := range linhas {
		t.BaseTributavel = t.BaseTributavel.Add(l.TotalLinha)
		t.TotalIVA = t.TotalIVA.Add(l.ValorIVA)
		t.TotalRetencao = t.TotalRetencao.Add(l.ValorRetencao)
	}
	t.TotalLiquido = t.BaseTributavel.Add(t.TotalIVA).Sub(t.TotalRetencao)
	return t
}
