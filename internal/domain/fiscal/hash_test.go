package fiscal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/domain/fiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cadeia de hash de auditoria
//
// Vetores calculados manualmente com SHA-256 sobre a cadeia
// "dataEmissao;dataRegisto;numeroDocumento;totalLiquido;hashAnterior".
// Se alguém alterar inadvertidamente o formato das datas, o separador ou a
// ordem dos campos, estes testes falham de imediato.
// ──────────────────────────────────────────────────────────────────────────────

const (
	hashDoc1 = "5ca731a68b5c65df1455e2d255b59cda639635af15fbd5f9063c4b84f2367231"
	hashDoc2 = "342b635e42a1cbdc59b73f0c810c5444db09ef6080530c38c696e23cf9d5a0f1"
)

func TestCalcularHash_VetorExato(t *testing.T) {
	h := fiscal.CalcularHash(fiscal.HashParams{
		DataEmissao:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DataRegisto:     time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC),
		NumeroDocumento: "FT A2026/1",
		TotalLiquido:    d("2140"),
		HashAnterior:    "",
	})
	assert.Equal(t, hashDoc1, h)
}

func TestCalcularHash_Encadeamento(t *testing.T) {
	h2 := fiscal.CalcularHash(fiscal.HashParams{
		DataEmissao:     time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		DataRegisto:     time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC),
		NumeroDocumento: "FT A2026/2",
		TotalLiquido:    d("500"),
		HashAnterior:    hashDoc1,
	})
	assert.Equal(t, hashDoc2, h2)

	// Alterar o total do primeiro documento quebra a cadeia a partir do segundo
	h1Alterado := fiscal.CalcularHash(fiscal.HashParams{
		DataEmissao:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DataRegisto:     time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC),
		NumeroDocumento: "FT A2026/1",
		TotalLiquido:    d("2141"),
		HashAnterior:    "",
	})
	require.NotEqual(t, hashDoc1, h1Alterado)
}

func TestResumoHash_QuatroCaracteres(t *testing.T) {
	assert.Equal(t, "55ed", fiscal.ResumoHash(hashDoc1))
	assert.Len(t, fiscal.ResumoHash(hashDoc1), 4)
}
