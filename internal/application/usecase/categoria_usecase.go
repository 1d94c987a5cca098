package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorias de produto.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create cria uma categoria.
func (uc *CategoriaUseCase) Create(empresaID string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.NewValidationError(map[string]string{"nome": "obrigatório"})
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Update atualiza nome e descrição.
func (uc *CategoriaUseCase) Update(empresaID, id string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil || categoria == nil {
		return nil, domain.ErrNotFound
	}
	if categoria.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Nome != "" {
		categoria.Nome = in.Nome
	}
	categoria.Descricao = in.Descricao
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// List lista as categorias da empresa.
func (uc *CategoriaUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.CategoriaResponse, int, error) {
	page.DefaultPage()
	categorias, total, err := uc.repo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, total, nil
}

// Delete soft delete da categoria; os produtos mantêm a referência.
func (uc *CategoriaUseCase) Delete(empresaID, id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil || categoria == nil {
		return domain.ErrNotFound
	}
	if categoria.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nome: c.Nome, Descricao: c.Descricao}
}
