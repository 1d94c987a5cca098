package entity

import "time"

// Categoria agrupa produtos para navegação e relatórios.
type Categoria struct {
	ID        string
	EmpresaID string
	Nome      string
	Descricao string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
