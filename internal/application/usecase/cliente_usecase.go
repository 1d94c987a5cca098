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

// ClienteUseCase CRUD de clientes. Clientes do tipo empresa têm o NIF
// validado ao criar e ao alterar.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um cliente.
func (uc *ClienteUseCase) Create(empresaID string, in dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	campos := map[string]string{}
	if in.Nome == "" {
		campos["nome"] = "obrigatório"
	}
	if in.Tipo != entity.TipoClienteConsumidorFinal && in.Tipo != entity.TipoClienteEmpresa {
		campos["tipo"] = "deve ser consumidor_final ou empresa"
	}
	if in.Tipo == entity.TipoClienteEmpresa {
		if in.NIF == "" {
			campos["nif"] = "obrigatório para clientes empresa"
		} else if err := domfiscal.ValidarNIF(in.NIF); err != nil {
			campos["nif"] = err.Error()
		}
	}
	if len(campos) > 0 {
		return nil, domain.NewValidationError(campos)
	}

	if in.NIF != "" {
		existente, _ := uc.repo.GetByEmpresaENIF(empresaID, in.NIF)
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		Tipo:      in.Tipo,
		NIF:       in.NIF,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtém um cliente da empresa.
func (uc *ClienteUseCase) GetByID(empresaID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toClienteResponse(cliente), nil
}

// Update atualiza campos do cliente. O tipo é imutável.
func (uc *ClienteUseCase) Update(empresaID, id string, in dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Nome != nil {
		cliente.Nome = *in.Nome
	}
	if in.NIF != nil {
		if cliente.Tipo == entity.TipoClienteEmpresa {
			if err := domfiscal.ValidarNIF(*in.NIF); err != nil {
				return nil, domain.NewValidationError(map[string]string{"nif": err.Error()})
			}
		}
		cliente.NIF = *in.NIF
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefone != nil {
		cliente.Telefone = *in.Telefone
	}
	if in.Endereco != nil {
		cliente.Endereco = *in.Endereco
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista os clientes da empresa, paginados.
func (uc *ClienteUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.ClienteResponse, int, error) {
	page.DefaultPage()
	clientes, total, err := uc.repo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, total, nil
}

// Delete soft delete do cliente; os documentos emitidos mantêm o histórico.
func (uc *ClienteUseCase) Delete(empresaID, id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil || cliente == nil {
		return domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Tipo:     c.Tipo,
		NIF:      c.NIF,
		Email:    c.Email,
		Telefone: c.Telefone,
		Endereco: c.Endereco,
	}
}
