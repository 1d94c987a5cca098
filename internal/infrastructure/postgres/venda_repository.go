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

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste o cabeçalho da venda.
func (r *VendaRepo) Create(venda *entity.Venda) error {
	if venda.ID == "" {
		venda.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vendas (id, empresa_id, cliente_id, estado, subtotal, total_desconto, total_iva, total,
			observacoes, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.EmpresaID, nullIfEmpty(venda.ClienteID), venda.Estado,
		venda.Subtotal, venda.TotalDesconto, venda.TotalIVA, venda.Total,
		nullIfEmpty(venda.Observacoes), venda.CreatedAt, venda.UpdatedAt, venda.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da venda.
func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO itens_venda (id, venda_id, produto_id, quantidade, preco_unitario, taxa_iva, desconto, total_linha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VendaID, item.ProdutoID, item.Quantidade, item.PrecoUnitario,
		item.TaxaIVA, item.Desconto, item.TotalLinha,
	)
	if err != nil {
		return fmt.Errorf("insert item venda: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	query := `
		SELECT id, empresa_id, cliente_id, estado, subtotal, total_desconto, total_iva, total,
		       observacoes, created_at, updated_at, created_by
		FROM vendas WHERE id = $1`
	v, err := scanVenda(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return v, nil
}

// GetItens obtém as linhas de uma venda.
func (r *VendaRepo) GetItens(vendaID string) ([]*entity.ItemVenda, error) {
	query := `
		SELECT id, venda_id, produto_id, quantidade, preco_unitario, taxa_iva, desconto, total_linha
		FROM itens_venda WHERE venda_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list itens venda: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemVenda
	for rows.Next() {
		var it entity.ItemVenda
		if err := rows.Scan(&it.ID, &it.VendaID, &it.ProdutoID, &it.Quantidade, &it.PrecoUnitario,
			&it.TaxaIVA, &it.Desconto, &it.TotalLinha); err != nil {
			return nil, fmt.Errorf("scan item venda: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateEstado altera o estado da venda (pendente → faturada | cancelada).
func (r *VendaRepo) UpdateEstado(id string, estado string) error {
	query := `UPDATE vendas SET estado = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, estado, time.Now())
	if err != nil {
		return fmt.Errorf("update estado venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmpresa lista vendas da empresa, mais recentes primeiro.
func (r *VendaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Venda, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM vendas WHERE empresa_id = $1`
	if err := r.q.QueryRow(context.Background(), countQuery, empresaID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendas: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, empresa_id, cliente_id, estado, subtotal, total_desconto, total_iva, total,
		       observacoes, created_at, updated_at, created_by
		FROM vendas WHERE empresa_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	var clienteID, observacoes *string
	err := row.Scan(
		&v.ID, &v.EmpresaID, &clienteID, &v.Estado, &v.Subtotal, &v.TotalDesconto, &v.TotalIVA, &v.Total,
		&observacoes, &v.CreatedAt, &v.UpdatedAt, &v.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	v.ClienteID = derefStr(clienteID)
	v.Observacoes = derefStr(observacoes)
	return &v, nil
}
