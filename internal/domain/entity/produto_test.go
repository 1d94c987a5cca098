package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/omunga/faturacao-api/internal/domain/entity"
)

func TestProduto_ServicoSemSemanticaDeStock(t *testing.T) {
	s := &entity.Produto{
		Tipo:          entity.TipoProdutoServico,
		EstoqueAtual:  decimal.Zero,
		EstoqueMinimo: decimal.NewFromInt(5),
		Retencao:      decimal.NewFromFloat(6.5),
	}
	assert.False(t, s.EstaEstoqueBaixo())
	assert.False(t, s.EstaSemEstoque())
	assert.True(t, s.TaxaRetencaoAplicavel().Equal(decimal.NewFromFloat(6.5)))
}

func TestProduto_FisicoStockBaixoESemStock(t *testing.T) {
	p := &entity.Produto{
		Tipo:          entity.TipoProdutoFisico,
		EstoqueAtual:  decimal.NewFromInt(3),
		EstoqueMinimo: decimal.NewFromInt(5),
	}
	assert.True(t, p.EstaEstoqueBaixo())
	assert.False(t, p.EstaSemEstoque())
	assert.True(t, p.TaxaRetencaoAplicavel().IsZero(), "produtos físicos não retêm")

	p.EstoqueAtual = decimal.Zero
	assert.True(t, p.EstaSemEstoque())
	assert.False(t, p.EstaEstoqueBaixo(), "sem stock não conta como stock baixo")
}
