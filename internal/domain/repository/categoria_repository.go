package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// CategoriaRepository define o porto de persistência de Categoria (soft delete).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Categoria, int, error)
	Delete(id string) error
}
