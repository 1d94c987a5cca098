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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColunas = `
	id, empresa_id, nome, tipo, nif, email, telefone, endereco, created_at, updated_at, deleted_at`

// Create persiste um cliente novo.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clientes (id, empresa_id, nome, tipo, nif, email, telefone, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.EmpresaID, cliente.Nome, cliente.Tipo,
		nullIfEmpty(cliente.NIF), nullIfEmpty(cliente.Email), nullIfEmpty(cliente.Telefone), nullIfEmpty(cliente.Endereco),
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("NIF de cliente já existe: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID (exclui eliminados).
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE id = $1 AND deleted_at IS NULL`
	return r.getCliente(query, id)
}

// GetByEmpresaENIF obtém um cliente pelo NIF dentro da empresa.
func (r *ClienteRepo) GetByEmpresaENIF(empresaID, nif string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE empresa_id = $1 AND nif = $2 AND deleted_at IS NULL`
	return r.getCliente(query, empresaID, nif)
}

// Update atualiza os dados do cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nome = $2, tipo = $3, nif = $4, email = $5, telefone = $6, endereco = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, cliente.Tipo,
		nullIfEmpty(cliente.NIF), nullIfEmpty(cliente.Email), nullIfEmpty(cliente.Telefone), nullIfEmpty(cliente.Endereco),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmpresa lista clientes da empresa com paginação.
func (r *ClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM clientes WHERE empresa_id = $1 AND deleted_at IS NULL`
	if err := r.q.QueryRow(context.Background(), countQuery, empresaID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE empresa_id = $1 AND deleted_at IS NULL ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Delete marca o cliente como eliminado (soft delete).
func (r *ClienteRepo) Delete(id string) error {
	query := `UPDATE clientes SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClienteRepo) getCliente(query string, args ...any) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var nif, email, telefone, endereco *string
	err := row.Scan(&c.ID, &c.EmpresaID, &c.Nome, &c.Tipo, &nif, &email, &telefone, &endereco,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	c.NIF = derefStr(nif)
	c.Email = derefStr(email)
	c.Telefone = derefStr(telefone)
	c.Endereco = derefStr(endereco)
	return &c, nil
}
