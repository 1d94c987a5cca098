package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrConflict             = errors.New("conflito com o estado actual")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrDocumentoFechado     = errors.New("documento já liquidado ou cancelado")
	ErrDocumentoCancelado   = errors.New("documento cancelado não admite operações")
	ErrValorExcedePendente  = errors.New("valor excede o saldo pendente")
	ErrTipoIncompativel     = errors.New("tipo de documento incompatível com a operação")
	ErrEstadoTerminal       = errors.New("estado do documento não admite transição")
	ErrNIFInvalido          = errors.New("NIF inválido")
	ErrEmailJaRegistado     = errors.New("o email já está registado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)

// ValidationError agrega erros de validação por campo, para respostas 422
// estruturadas (campo → mensagem).
type ValidationError struct {
	Campos map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validação falhou em %d campo(s)", len(e.Campos))
}

// NewValidationError constrói um ValidationError a partir de pares campo/mensagem.
func NewValidationError(campos map[string]string) *ValidationError {
	return &ValidationError{Campos: campos}
}

// AsValidation devolve o ValidationError embrulhado em err, se existir.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
