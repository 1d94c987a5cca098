package repository

import "github.com/omunga/faturacao-api/internal/domain/entity"

// VendaRepository define o porto de persistência de Venda e itens.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	CreateItem(item *entity.ItemVenda) error
	GetByID(id string) (*entity.Venda, error)
	GetItens(vendaID string) ([]*entity.ItemVenda, error)
	UpdateEstado(id string, estado string) error
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Venda, int, error)
}
