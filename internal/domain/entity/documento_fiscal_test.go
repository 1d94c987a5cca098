package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/omunga/faturacao-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados do documento fiscal
// ──────────────────────────────────────────────────────────────────────────────

func TestEstado_Terminais(t *testing.T) {
	assert.True(t, entity.EstadoPaga.Terminal())
	assert.True(t, entity.EstadoCancelado.Terminal())
	assert.True(t, entity.EstadoExpirado.Terminal())
	assert.False(t, entity.EstadoEmitido.Terminal())
	assert.False(t, entity.EstadoParcialmentePaga.Terminal())
}

func TestEstado_AdmitePagamento(t *testing.T) {
	assert.True(t, entity.EstadoEmitido.AdmitePagamento())
	assert.True(t, entity.EstadoParcialmentePaga.AdmitePagamento())
	assert.False(t, entity.EstadoPaga.AdmitePagamento())
	assert.False(t, entity.EstadoCancelado.AdmitePagamento())
	assert.False(t, entity.EstadoExpirado.AdmitePagamento())
}

func TestTipoDocumento_Regras(t *testing.T) {
	// recibos só sobre FT e FA
	assert.True(t, entity.TipoFT.AdmiteRecibo())
	assert.True(t, entity.TipoFA.AdmiteRecibo())
	assert.False(t, entity.TipoFR.AdmiteRecibo())
	assert.False(t, entity.TipoFP.AdmiteRecibo())

	// NC/ND só derivam de FT e FR
	assert.True(t, entity.TipoFT.AdmiteNota())
	assert.True(t, entity.TipoFR.AdmiteNota())
	assert.False(t, entity.TipoFA.AdmiteNota())

	// proformas e adiantamentos não movimentam stock
	assert.True(t, entity.TipoFT.MovimentaStock())
	assert.True(t, entity.TipoFR.MovimentaStock())
	assert.False(t, entity.TipoFP.MovimentaStock())
	assert.False(t, entity.TipoFA.MovimentaStock())

	// derivados não são emissíveis diretamente
	assert.False(t, entity.TipoNC.Emissivel())
	assert.False(t, entity.TipoND.Emissivel())
	assert.False(t, entity.TipoRC.Emissivel())
	assert.True(t, entity.TipoFT.Emissivel())

	assert.False(t, entity.TipoDocumento("XX").Valido())
}

func TestDocumento_CanceladoNuncaReverte(t *testing.T) {
	doc := &entity.DocumentoFiscal{TipoDocumento: entity.TipoFT, Estado: entity.EstadoCancelado}
	assert.False(t, doc.PodeCancelar())
	assert.False(t, doc.PodeGerarRecibo())
	assert.False(t, doc.PodeDerivarNota())
}

func TestDocumento_CancelaApenasEstadosNaoTerminais(t *testing.T) {
	doc := &entity.DocumentoFiscal{TipoDocumento: entity.TipoFT, Estado: entity.EstadoEmitido}
	assert.True(t, doc.PodeCancelar())

	doc.Estado = entity.EstadoParcialmentePaga
	assert.True(t, doc.PodeCancelar())

	// posição fiscal fechada: o acerto faz-se por NC, nunca por cancelamento
	doc.Estado = entity.EstadoPaga
	assert.False(t, doc.PodeCancelar())

	doc.Estado = entity.EstadoExpirado
	assert.False(t, doc.PodeCancelar())
}

func TestDocumento_TotaisConsistentes(t *testing.T) {
	doc := &entity.DocumentoFiscal{
		BaseTributavel: decimal.NewFromInt(2000),
		TotalIVA:       decimal.NewFromInt(140),
		TotalRetencao:  decimal.Zero,
		TotalLiquido:   decimal.NewFromInt(2140),
	}
	assert.True(t, doc.TotaisConsistentes())

	// dentro da tolerância de arredondamento (0.01)
	doc.TotalLiquido = decimal.NewFromFloat(2140.01)
	assert.True(t, doc.TotaisConsistentes())

	doc.TotalLiquido = decimal.NewFromFloat(2140.02)
	assert.False(t, doc.TotaisConsistentes())
}

func TestDocumento_ExpiraApenasFAEmitido(t *testing.T) {
	ontem := time.Now().Add(-24 * time.Hour)
	fa := &entity.DocumentoFiscal{
		TipoDocumento:  entity.TipoFA,
		Estado:         entity.EstadoEmitido,
		DataVencimento: &ontem,
	}
	assert.True(t, fa.Expirou(time.Now()))

	fa.Estado = entity.EstadoParcialmentePaga
	assert.False(t, fa.Expirou(time.Now()), "FA com pagamentos parciais não expira")

	ft := &entity.DocumentoFiscal{
		TipoDocumento:  entity.TipoFT,
		Estado:         entity.EstadoEmitido,
		DataVencimento: &ontem,
	}
	assert.False(t, ft.Expirou(time.Now()), "só FA expira")
}
