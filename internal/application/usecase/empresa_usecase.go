package usecase

import (
	"time"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// EmpresaUseCase perfil do tenant: consulta e edição dos dados da empresa.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Get devolve o perfil da empresa autenticada.
func (uc *EmpresaUseCase) Get(empresaID string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(empresaID)
	if err != nil || empresa == nil {
		return nil, domain.ErrNotFound
	}
	return toEmpresaResponse(empresa), nil
}

// Update atualiza o perfil. O NIF é imutável depois do registo; o regime
// fiscal só aceita os valores conhecidos.
func (uc *EmpresaUseCase) Update(empresaID string, in dto.AtualizarEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(empresaID)
	if err != nil || empresa == nil {
		return nil, domain.ErrNotFound
	}
	if in.Regime != "" {
		switch in.Regime {
		case "geral", "simplificado", "exclusao":
			empresa.Regime = in.Regime
		default:
			return nil, domain.NewValidationError(map[string]string{"regime": "valor inválido"})
		}
	}
	if in.Nome != "" {
		empresa.Nome = in.Nome
	}
	empresa.Endereco = in.Endereco
	empresa.Telefone = in.Telefone
	empresa.Email = in.Email
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:       e.ID,
		Nome:     e.Nome,
		NIF:      e.NIF,
		Endereco: e.Endereco,
		Telefone: e.Telefone,
		Email:    e.Email,
		Regime:   e.Regime,
	}
}
