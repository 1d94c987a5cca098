package relatorios_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/application/relatorios"
	"github.com/omunga/faturacao-api/internal/domain/entity"
)

func doc(tipo entity.TipoDocumento, estado entity.EstadoDocumento, total int64, mes time.Month) *entity.DocumentoFiscal {
	return &entity.DocumentoFiscal{
		TipoDocumento: tipo,
		Estado:        estado,
		TotalLiquido:  decimal.NewFromInt(total),
		DataEmissao:   time.Date(2026, mes, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestAgregarPeriodo(t *testing.T) {
	docs := []*entity.DocumentoFiscal{
		doc(entity.TipoFT, entity.EstadoEmitido, 1000, time.March),
		doc(entity.TipoFR, entity.EstadoPaga, 500, time.March),
		doc(entity.TipoNC, entity.EstadoEmitido, 200, time.March),
		doc(entity.TipoND, entity.EstadoEmitido, 50, time.March),
		doc(entity.TipoRC, entity.EstadoPaga, 300, time.March),
		doc(entity.TipoFP, entity.EstadoEmitido, 9999, time.March), // proforma não fatura
		doc(entity.TipoFT, entity.EstadoCancelado, 777, time.March),
	}

	totais := relatorios.AgregarPeriodo(docs)

	// 1000 + 500 − 200 + 50; o cancelado e a proforma ficam de fora
	assert.True(t, totais.Faturado.Equal(decimal.NewFromInt(1350)), "faturado: %s", totais.Faturado)
	// RC 300 + FR 500
	assert.True(t, totais.Recebido.Equal(decimal.NewFromInt(800)), "recebido: %s", totais.Recebido)
	assert.Equal(t, 7, totais.Documentos)
	assert.Equal(t, 2, totais.PorTipo["FT"])
	assert.Equal(t, 1, totais.PorEstado["cancelado"])
}

func TestAgregarPeriodo_Vazio(t *testing.T) {
	totais := relatorios.AgregarPeriodo(nil)
	assert.True(t, totais.Faturado.IsZero())
	assert.True(t, totais.Recebido.IsZero())
	assert.Equal(t, 0, totais.Documentos)
}

func TestAgregarPorMes(t *testing.T) {
	docs := []*entity.DocumentoFiscal{
		doc(entity.TipoFT, entity.EstadoEmitido, 1000, time.January),
		doc(entity.TipoFT, entity.EstadoPaga, 400, time.January),
		doc(entity.TipoNC, entity.EstadoEmitido, 100, time.January),
		doc(entity.TipoFR, entity.EstadoPaga, 250, time.July),
		doc(entity.TipoFT, entity.EstadoCancelado, 888, time.July),
	}

	meses := relatorios.AgregarPorMes(docs)
	require.Len(t, meses, 12)

	jan := meses[0]
	assert.Equal(t, "Jan", jan.Label)
	assert.True(t, jan.Faturado.Equal(decimal.NewFromInt(1400)))
	assert.True(t, jan.NotasCredito.Equal(decimal.NewFromInt(100)))
	assert.True(t, jan.Liquido.Equal(decimal.NewFromInt(1300)))
	assert.Equal(t, 3, jan.Documentos)

	jul := meses[6]
	assert.True(t, jul.Faturado.Equal(decimal.NewFromInt(250)), "cancelado não conta")
	assert.Equal(t, 1, jul.Documentos)

	// meses sem movimento vêm a zero
	assert.True(t, meses[11].Liquido.IsZero())
	assert.Equal(t, 12, meses[11].Mes)
}
