package entity

import "time"

// Papéis de utilizador.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User é um utilizador da aplicação, sempre associado a uma empresa (tenant).
type User struct {
	ID           string
	EmpresaID    string
	Nome         string
	Email        string
	PasswordHash string
	Role         string // admin | operador
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
