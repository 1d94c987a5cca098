package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência do tenant.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByNIF(nif string) (*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
}
