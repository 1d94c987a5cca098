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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação de CategoriaRepository (usável com pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma categoria nova.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	if categoria.ID == "" {
		categoria.ID = uuid.New().String()
	}
	query := `
		INSERT INTO categorias (id, empresa_id, nome, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.EmpresaID, categoria.Nome, nullIfEmpty(categoria.Descricao),
		categoria.CreatedAt, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("categoria já existe: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID (exclui eliminadas).
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `
		SELECT id, empresa_id, nome, descricao, created_at, updated_at, deleted_at
		FROM categorias WHERE id = $1 AND deleted_at IS NULL`
	var c entity.Categoria
	var descricao *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.Nome, &descricao, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	c.Descricao = derefStr(descricao)
	return &c, nil
}

// Update atualiza nome e descrição.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	query := `
		UPDATE categorias SET nome = $2, descricao = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.Nome, nullIfEmpty(categoria.Descricao), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmpresa lista categorias da empresa com paginação.
func (r *CategoriaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Categoria, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM categorias WHERE empresa_id = $1 AND deleted_at IS NULL`
	if err := r.q.QueryRow(context.Background(), countQuery, empresaID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categorias: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, empresa_id, nome, descricao, created_at, updated_at, deleted_at
		FROM categorias WHERE empresa_id = $1 AND deleted_at IS NULL
		ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		var descricao *string
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Nome, &descricao, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, 0, fmt.Errorf("scan categoria: %w", err)
		}
		c.Descricao = derefStr(descricao)
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Delete marca a categoria como eliminada (soft delete).
func (r *CategoriaRepo) Delete(id string) error {
	query := `UPDATE categorias SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
