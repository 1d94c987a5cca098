package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// SerieRepository define o porto do contador de numeração por série.
type SerieRepository interface {
	// ProximoNumero incrementa e devolve o próximo número da série sob
	// bloqueio de linha. Deve correr dentro da transação de emissão: é o que
	// garante numeração monótona e sem lacunas com emissões concorrentes.
	// Se a série não existir, é criada com o primeiro número.
	ProximoNumero(empresaID, codigo string, tipo entity.TipoDocumento) (int64, error)
	ListByEmpresa(empresaID string) ([]*entity.Serie, error)
}
