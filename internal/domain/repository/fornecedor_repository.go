package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// FornecedorRepository define o porto de persistência de Fornecedor (soft delete).
type FornecedorRepository interface {
	Create(fornecedor *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	Update(fornecedor *entity.Fornecedor) error
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Fornecedor, int, error)
	Delete(id string) error
}
