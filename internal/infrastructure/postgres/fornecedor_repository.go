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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

const fornecedorColunas = `
	id, empresa_id, nome, nif, email, telefone, endereco, created_at, updated_at, deleted_at`

// Create persiste um fornecedor novo.
func (r *FornecedorRepo) Create(fornecedor *entity.Fornecedor) error {
	if fornecedor.ID == "" {
		fornecedor.ID = uuid.New().String()
	}
	query := `
		INSERT INTO fornecedores (id, empresa_id, nome, nif, email, telefone, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.EmpresaID, fornecedor.Nome,
		nullIfEmpty(fornecedor.NIF), nullIfEmpty(fornecedor.Email), nullIfEmpty(fornecedor.Telefone), nullIfEmpty(fornecedor.Endereco),
		fornecedor.CreatedAt, fornecedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("NIF de fornecedor já existe: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID (exclui eliminados).
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE id = $1 AND deleted_at IS NULL`
	f, err := scanFornecedor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

// Update atualiza os dados do fornecedor.
func (r *FornecedorRepo) Update(fornecedor *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, nif = $3, email = $4, telefone = $5, endereco = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.Nome,
		nullIfEmpty(fornecedor.NIF), nullIfEmpty(fornecedor.Email), nullIfEmpty(fornecedor.Telefone), nullIfEmpty(fornecedor.Endereco),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmpresa lista fornecedores da empresa com paginação.
func (r *FornecedorRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Fornecedor, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM fornecedores WHERE empresa_id = $1 AND deleted_at IS NULL`
	if err := r.q.QueryRow(context.Background(), countQuery, empresaID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count fornecedores: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + fornecedorColunas + ` FROM fornecedores WHERE empresa_id = $1 AND deleted_at IS NULL ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Fornecedor
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, f)
	}
	return list, total, rows.Err()
}

// Delete marca o fornecedor como eliminado (soft delete).
func (r *FornecedorRepo) Delete(id string) error {
	query := `UPDATE fornecedores SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	var nif, email, telefone, endereco *string
	err := row.Scan(&f.ID, &f.EmpresaID, &f.Nome, &nif, &email, &telefone, &endereco,
		&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt)
	if err != nil {
		return nil, err
	}
	f.NIF = derefStr(nif)
	f.Email = derefStr(email)
	f.Telefone = derefStr(telefone)
	f.Endereco = derefStr(endereco)
	return &f, nil
}
