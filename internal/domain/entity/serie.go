package entity

import "time"

// Serie é o contador de numeração por (empresa, código, tipo de documento).
// O próximo número é atribuído sob bloqueio de linha na transação de emissão,
// garantindo numeração monótona e sem lacunas mesmo com emissões concorrentes.
type Serie struct {
	ID            string
	EmpresaID     string
	Codigo        string // ex.: "A2026"
	TipoDocumento TipoDocumento
	ProximoNumero int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
