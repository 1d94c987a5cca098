package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// ClienteRepository define o porto de persistência de Cliente (soft delete).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByEmpresaENIF(empresaID, nif string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, int, error)
	Delete(id string) error
}
