package entity

import "time"

// Empresa é o tenant: cada registo da aplicação é isolado por EmpresaID.
// A identidade do tenant viaja no token e no contexto do pedido, nunca em
// estado global mutável.
type Empresa struct {
	ID        string
	Nome      string
	NIF       string
	Endereco  string
	Telefone  string
	Email     string
	Regime    string // regime fiscal: geral | simplificado | exclusao
	CreatedAt time.Time
	UpdatedAt time.Time
}
