package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ repository.MovimentoStockRepository = (*MovimentoStockRepo)(nil)

// MovimentoStockRepo implementação de MovimentoStockRepository (usável com
// pool ou tx). O livro é append-only: não existem Update nem Delete.
type MovimentoStockRepo struct {
	q Querier
}

// NewMovimentoStockRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoStockRepository(q Querier) *MovimentoStockRepo {
	return &MovimentoStockRepo{q: q}
}

// Create regista um movimento no livro de stock.
func (r *MovimentoStockRepo) Create(mov *entity.MovimentoStock) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentos_stock (id, empresa_id, produto_id, tipo, tipo_movimento, quantidade,
			estoque_anterior, estoque_novo, referencia, observacoes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.EmpresaID, mov.ProdutoID, mov.Tipo, mov.TipoMovimento, mov.Quantidade,
		mov.EstoqueAnterior, mov.EstoqueNovo, nullIfEmpty(mov.Referencia), nullIfEmpty(mov.Observacoes),
		mov.CreatedAt, mov.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movimento stock: %w", err)
	}
	return nil
}

// ListByProduto lista os movimentos de um produto, mais recentes primeiro.
func (r *MovimentoStockRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.MovimentoStock, int, error) {
	return r.list("produto_id", produtoID, limit, offset)
}

// ListByEmpresa lista os movimentos da empresa, mais recentes primeiro.
func (r *MovimentoStockRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.MovimentoStock, int, error) {
	return r.list("empresa_id", empresaID, limit, offset)
}

func (r *MovimentoStockRepo) list(coluna, valor string, limit, offset int) ([]*entity.MovimentoStock, int, error) {
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM movimentos_stock WHERE %s = $1", coluna)
	if err := r.q.QueryRow(context.Background(), countQuery, valor).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimentos: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`
		SELECT id, empresa_id, produto_id, tipo, tipo_movimento, quantidade,
		       estoque_anterior, estoque_novo, referencia, observacoes, created_at, created_by
		FROM movimentos_stock WHERE %s = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, coluna)
	rows, err := r.q.Query(context.Background(), query, valor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimentoStock
	for rows.Next() {
		var m entity.MovimentoStock
		var referencia, observacoes *string
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.ProdutoID, &m.Tipo, &m.TipoMovimento, &m.Quantidade,
			&m.EstoqueAnterior, &m.EstoqueNovo, &referencia, &observacoes, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, 0, fmt.Errorf("scan movimento: %w", err)
		}
		m.Referencia = derefStr(referencia)
		m.Observacoes = derefStr(observacoes)
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
