package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// UserRepository define o porto de persistência de utilizadores.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
