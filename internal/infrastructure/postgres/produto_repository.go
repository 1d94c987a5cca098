package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `
	id, empresa_id, categoria_id, fornecedor_id, codigo, nome, descricao, tipo,
	preco_venda, taxa_iva, retencao, estoque_atual, estoque_minimo,
	duracao_estimada, created_at, updated_at, deleted_at`

// Create persiste um produto novo.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	if produto.ID == "" {
		produto.ID = uuid.New().String()
	}
	query := `
		INSERT INTO produtos (id, empresa_id, categoria_id, fornecedor_id, codigo, nome, descricao, tipo,
			preco_venda, taxa_iva, retencao, estoque_atual, estoque_minimo, duracao_estimada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.EmpresaID, nullIfEmpty(produto.CategoriaID), nullIfEmpty(produto.FornecedorID),
		produto.Codigo, produto.Nome, nullIfEmpty(produto.Descricao), produto.Tipo,
		produto.PrecoVenda, produto.TaxaIVA, produto.Retencao,
		produto.EstoqueAtual, produto.EstoqueMinimo, produto.DuracaoEstimada,
		produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("código de produto já existe: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID (exclui eliminados).
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1 AND deleted_at IS NULL`
	return r.getProduto(query, id)
}

// GetByIDForUpdate bloqueia a linha do produto até ao fim da transação.
// Usar apenas dentro de transação, antes de mexer no stock.
func (r *ProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.getProduto(query, id)
}

// GetByEmpresaECodigo obtém um produto pelo código dentro da empresa.
func (r *ProdutoRepo) GetByEmpresaECodigo(empresaID, codigo string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE empresa_id = $1 AND codigo = $2 AND deleted_at IS NULL`
	return r.getProduto(query, empresaID, codigo)
}

// Update atualiza os campos editáveis do produto. O stock nunca passa por
// aqui: só UpdateEstoque o altera, sempre acompanhado de um movimento.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos
		SET categoria_id     = $2,
		    fornecedor_id    = $3,
		    nome             = $4,
		    descricao        = $5,
		    preco_venda      = $6,
		    taxa_iva         = $7,
		    retencao         = $8,
		    estoque_minimo   = $9,
		    duracao_estimada = $10,
		    updated_at       = $11
		WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		produto.ID, nullIfEmpty(produto.CategoriaID), nullIfEmpty(produto.FornecedorID),
		produto.Nome, nullIfEmpty(produto.Descricao), produto.PrecoVenda, produto.TaxaIVA,
		produto.Retencao, produto.EstoqueMinimo, produto.DuracaoEstimada, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstoque grava o estoque absoluto calculado pela transação de stock.
func (r *ProdutoRepo) UpdateEstoque(produtoID string, estoque decimal.Decimal) error {
	query := `UPDATE produtos SET estoque_atual = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, produtoID, estoque)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmpresa lista produtos da empresa com paginação.
func (r *ProdutoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Produto, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM produtos WHERE empresa_id = $1 AND deleted_at IS NULL`
	if err := r.q.QueryRow(context.Background(), countQuery, empresaID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count produtos: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE empresa_id = $1 AND deleted_at IS NULL ORDER BY nome LIMIT $2 OFFSET $3`
	list, err := r.queryProdutos(query, empresaID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListStockBaixo devolve produtos físicos com stock no mínimo ou abaixo
// (excluindo os já esgotados a zero, que aparecem noutra métrica).
func (r *ProdutoRepo) ListStockBaixo(empresaID string) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos
		WHERE empresa_id = $1 AND deleted_at IS NULL AND tipo = 'produto'
		  AND estoque_atual <= estoque_minimo AND estoque_atual > 0
		ORDER BY estoque_atual`
	return r.queryProdutos(query, empresaID)
}

// Delete marca o produto como eliminado (soft delete). Os documentos que o
// referenciam continuam íntegros.
func (r *ProdutoRepo) Delete(id string) error {
	query := `UPDATE produtos SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProdutoRepo) getProduto(query string, args ...any) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

func (r *ProdutoRepo) queryProdutos(query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var categoriaID, fornecedorID, descricao *string
	err := row.Scan(
		&p.ID, &p.EmpresaID, &categoriaID, &fornecedorID, &p.Codigo, &p.Nome, &descricao, &p.Tipo,
		&p.PrecoVenda, &p.TaxaIVA, &p.Retencao, &p.EstoqueAtual, &p.EstoqueMinimo,
		&p.DuracaoEstimada, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CategoriaID = derefStr(categoriaID)
	p.FornecedorID = derefStr(fornecedorID)
	p.Descricao = derefStr(descricao)
	return &p, nil
}
