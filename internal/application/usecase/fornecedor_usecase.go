package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	domfiscal "github.com/omunga/faturacao-api/internal/domain/fiscal"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Create cria um fornecedor. O NIF, se fornecido, é validado.
func (uc *FornecedorUseCase) Create(empresaID string, in dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	campos := map[string]string{}
	if in.Nome == "" {
		campos["nome"] = "obrigatório"
	}
	if in.NIF != "" {
		if err := domfiscal.ValidarNIF(in.NIF); err != nil {
			campos["nif"] = err.Error()
		}
	}
	if len(campos) > 0 {
		return nil, domain.NewValidationError(campos)
	}
	now := time.Now()
	fornecedor := &entity.Fornecedor{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		NIF:       in.NIF,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// Update atualiza campos do fornecedor.
func (uc *FornecedorUseCase) Update(empresaID, id string, in dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil || fornecedor == nil {
		return nil, domain.ErrNotFound
	}
	if fornecedor.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.NIF != "" {
		if err := domfiscal.ValidarNIF(in.NIF); err != nil {
			return nil, domain.NewValidationError(map[string]string{"nif": err.Error()})
		}
	}
	if in.Nome != "" {
		fornecedor.Nome = in.Nome
	}
	if in.NIF != "" {
		fornecedor.NIF = in.NIF
	}
	if in.Email != "" {
		fornecedor.Email = in.Email
	}
	if in.Telefone != "" {
		fornecedor.Telefone = in.Telefone
	}
	if in.Endereco != "" {
		fornecedor.Endereco = in.Endereco
	}
	fornecedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// List lista os fornecedores da empresa.
func (uc *FornecedorUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.FornecedorResponse, int, error) {
	page.DefaultPage()
	fornecedores, total, err := uc.repo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, toFornecedorResponse(f))
	}
	return out, total, nil
}

// Delete soft delete do fornecedor.
func (uc *FornecedorUseCase) Delete(empresaID, id string) error {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil || fornecedor == nil {
		return domain.ErrNotFound
	}
	if fornecedor.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID,
		Nome:     f.Nome,
		NIF:      f.NIF,
		Email:    f.Email,
		Telefone: f.Telefone,
		Endereco: f.Endereco,
	}
}
