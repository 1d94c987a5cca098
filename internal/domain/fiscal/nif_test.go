package fiscal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omunga/faturacao-api/internal/domain/fiscal"
)

func TestValidarNIF_PessoaColetiva(t *testing.T) {
	assert.NoError(t, fiscal.ValidarNIF("5417000123"))
	assert.Error(t, fiscal.ValidarNIF("4417000123"), "deve começar por 5")
	assert.Error(t, fiscal.ValidarNIF("5417OOO123"), "apenas dígitos")
}

func TestValidarNIF_PessoaSingular(t *testing.T) {
	assert.NoError(t, fiscal.ValidarNIF("004469318LA042"))
	assert.NoError(t, fiscal.ValidarNIF("004469318la042"), "minúsculas são normalizadas")
	assert.Error(t, fiscal.ValidarNIF("0044693181A042"), "posição das letras errada")
}

func TestValidarNIF_ComprimentoInvalido(t *testing.T) {
	assert.Error(t, fiscal.ValidarNIF(""))
	assert.Error(t, fiscal.ValidarNIF("12345"))
	assert.Error(t, fiscal.ValidarNIF("541700012345678"))
}
