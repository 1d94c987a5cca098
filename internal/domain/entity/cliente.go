package entity

import "time"

// Tipos de cliente.
const (
	TipoClienteConsumidorFinal = "consumidor_final"
	TipoClienteEmpresa         = "empresa"
)

// Cliente representa um cliente da empresa. O NIF é validado quando o tipo
// é empresa; consumidores finais podem não ter NIF.
type Cliente struct {
	ID        string
	EmpresaID string
	Nome      string
	Tipo      string // consumidor_final | empresa
	NIF       string
	Email     string
	Telefone  string
	Endereco  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
