package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação de EmpresaRepository (usável com pool ou tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste uma empresa nova (tenant).
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	if empresa.ID == "" {
		empresa.ID = uuid.New().String()
	}
	query := `
		INSERT INTO empresas (id, nome, nif, endereco, telefone, email, regime, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, empresa.NIF,
		nullIfEmpty(empresa.Endereco), nullIfEmpty(empresa.Telefone), nullIfEmpty(empresa.Email),
		empresa.Regime, empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("NIF de empresa já registado: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT id, nome, nif, endereco, telefone, email, regime, created_at, updated_at FROM empresas WHERE id = $1`
	return r.getEmpresa(query, id)
}

// GetByNIF obtém uma empresa pelo NIF.
func (r *EmpresaRepo) GetByNIF(nif string) (*entity.Empresa, error) {
	query := `SELECT id, nome, nif, endereco, telefone, email, regime, created_at, updated_at FROM empresas WHERE nif = $1`
	return r.getEmpresa(query, nif)
}

// Update atualiza os dados da empresa. O NIF não é editável.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `
		UPDATE empresas
		SET nome = $2, endereco = $3, telefone = $4, email = $5, regime = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome,
		nullIfEmpty(empresa.Endereco), nullIfEmpty(empresa.Telefone), nullIfEmpty(empresa.Email),
		empresa.Regime, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmpresaRepo) getEmpresa(query string, args ...any) (*entity.Empresa, error) {
	var e entity.Empresa
	var endereco, telefone, email *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&e.ID, &e.Nome, &e.NIF, &endereco, &telefone, &email, &e.Regime, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	e.Endereco = derefStr(endereco)
	e.Telefone = derefStr(telefone)
	e.Email = derefStr(email)
	return &e, nil
}
