package entity

import "time"

// Fornecedor representa um fornecedor de produtos (entradas de stock por compra).
type Fornecedor struct {
	ID        string
	EmpresaID string
	Nome      string
	NIF       string
	Email     string
	Telefone  string
	Endereco  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
