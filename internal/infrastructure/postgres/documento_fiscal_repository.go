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

var _ repository.DocumentoFiscalRepository = (*DocumentoFiscalRepo)(nil)

// DocumentoFiscalRepo implementação de DocumentoFiscalRepository (usável com pool ou tx).
type DocumentoFiscalRepo struct {
	q Querier
}

// NewDocumentoFiscalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDocumentoFiscalRepository(q Querier) *DocumentoFiscalRepo {
	return &DocumentoFiscalRepo{q: q}
}

const documentoColunas = `
	id, empresa_id, serie, numero, numero_documento, tipo_documento, estado,
	cliente_id, cliente_nome, venda_id, fatura_id,
	base_tributavel, total_iva, total_retencao, total_liquido,
	motivo, motivo_cancelamento, hash_fiscal,
	data_emissao, data_vencimento, created_at, updated_at`

// Create persiste o cabeçalho do documento fiscal.
func (r *DocumentoFiscalRepo) Create(doc *entity.DocumentoFiscal) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO documentos_fiscais (id, empresa_id, serie, numero, numero_documento, tipo_documento, estado,
			cliente_id, cliente_nome, venda_id, fatura_id,
			base_tributavel, total_iva, total_retencao, total_liquido,
			motivo, motivo_cancelamento, hash_fiscal, data_emissao, data_vencimento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.EmpresaID, doc.Serie, doc.Numero, doc.NumeroDocumento, doc.TipoDocumento, doc.Estado,
		nullIfEmpty(doc.ClienteID), nullIfEmpty(doc.ClienteNome), nullIfEmpty(doc.VendaID), nullIfEmpty(doc.FaturaID),
		doc.BaseTributavel, doc.TotalIVA, doc.TotalRetencao, doc.TotalLiquido,
		nullIfEmpty(doc.Motivo), nullIfEmpty(doc.MotivoCancelamento), doc.HashFiscal,
		doc.DataEmissao, doc.DataVencimento, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número do documento já existe: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do documento.
func (r *DocumentoFiscalRepo) CreateItem(item *entity.ItemDocumento) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO itens_documento (id, documento_id, produto_id, descricao, quantidade, preco_unitario,
			taxa_iva, desconto, valor_iva, valor_retencao, total_linha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.DocumentoID, nullIfEmpty(item.ProdutoID), item.Descricao,
		item.Quantidade, item.PrecoUnitario, item.TaxaIVA, item.Desconto,
		item.ValorIVA, item.ValorRetencao, item.TotalLinha,
	)
	if err != nil {
		return fmt.Errorf("insert item documento: %w", err)
	}
	return nil
}

// GetByID obtém um documento por ID.
func (r *DocumentoFiscalRepo) GetByID(id string) (*entity.DocumentoFiscal, error) {
	query := `SELECT ` + documentoColunas + ` FROM documentos_fiscais WHERE id = $1`
	doc, err := scanDocumento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return doc, nil
}

// GetItens obtém todas as linhas de um documento.
func (r *DocumentoFiscalRepo) GetItens(documentoID string) ([]*entity.ItemDocumento, error) {
	query := `
		SELECT id, documento_id, produto_id, descricao, quantidade, preco_unitario,
		       taxa_iva, desconto, valor_iva, valor_retencao, total_linha
		FROM itens_documento WHERE documento_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, documentoID)
	if err != nil {
		return nil, fmt.Errorf("list itens documento: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemDocumento
	for rows.Next() {
		var it entity.ItemDocumento
		var produtoID *string
		if err := rows.Scan(&it.ID, &it.DocumentoID, &produtoID, &it.Descricao, &it.Quantidade,
			&it.PrecoUnitario, &it.TaxaIVA, &it.Desconto, &it.ValorIVA, &it.ValorRetencao, &it.TotalLinha); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.ProdutoID = derefStr(produtoID)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateEstado altera só estado e motivo de cancelamento; os totais e o hash
// nunca são reescritos.
func (r *DocumentoFiscalRepo) UpdateEstado(id string, estado entity.EstadoDocumento, motivoCancelamento string) error {
	query := `
		UPDATE documentos_fiscais
		SET estado = $2,
		    motivo_cancelamento = COALESCE($3, motivo_cancelamento),
		    updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, estado, nullIfEmpty(motivoCancelamento), time.Now())
	if err != nil {
		return fmt.Errorf("update estado documento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEmpresa lista documentos da empresa com filtros dinâmicos e total
// para paginação.
func (r *DocumentoFiscalRepo) ListByEmpresa(empresaID string, filtro repository.DocumentoFiscalFiltro) ([]*entity.DocumentoFiscal, int, error) {
	where := "WHERE empresa_id = $1"
	args := []any{empresaID}
	idx := 2

	if filtro.Tipo != "" {
		where += fmt.Sprintf(" AND tipo_documento = $%d", idx)
		args = append(args, filtro.Tipo)
		idx++
	}
	if filtro.Estado != "" {
		where += fmt.Sprintf(" AND estado = $%d", idx)
		args = append(args, filtro.Estado)
		idx++
	}
	if filtro.ClienteID != "" {
		where += fmt.Sprintf(" AND cliente_id = $%d", idx)
		args = append(args, filtro.ClienteID)
		idx++
	}
	if filtro.DataInicio != nil {
		where += fmt.Sprintf(" AND data_emissao >= $%d", idx)
		args = append(args, *filtro.DataInicio)
		idx++
	}
	if filtro.DataFim != nil {
		where += fmt.Sprintf(" AND data_emissao <= $%d", idx)
		args = append(args, *filtro.DataFim)
		idx++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM documentos_fiscais " + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documentos: %w", err)
	}

	limit := filtro.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf("SELECT %s FROM documentos_fiscais %s ORDER BY data_emissao DESC, numero DESC LIMIT $%d OFFSET $%d",
		documentoColunas, where, idx, idx+1)
	args = append(args, limit, filtro.Offset)

	list, err := r.queryDocumentos(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListDerivados devolve os documentos cujo fatura_id aponta para o documento dado.
func (r *DocumentoFiscalRepo) ListDerivados(documentoID string) ([]*entity.DocumentoFiscal, error) {
	query := `SELECT ` + documentoColunas + ` FROM documentos_fiscais WHERE fatura_id = $1 ORDER BY data_emissao, numero`
	return r.queryDocumentos(query, documentoID)
}

// SomaRecibos soma o total_liquido dos RC não cancelados com origem no documento.
func (r *DocumentoFiscalRepo) SomaRecibos(documentoID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_liquido), 0)
		FROM documentos_fiscais
		WHERE fatura_id = $1 AND tipo_documento = 'RC' AND estado <> 'cancelado'`
	var soma decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, documentoID).Scan(&soma); err != nil {
		return decimal.Zero, fmt.Errorf("soma recibos: %w", err)
	}
	return soma, nil
}

// UltimoHash devolve o hash fiscal do documento mais recente da série (o elo
// anterior da cadeia). Vazio se a série ainda não tem documentos.
func (r *DocumentoFiscalRepo) UltimoHash(empresaID, serie string, tipo entity.TipoDocumento) (string, error) {
	query := `
		SELECT hash_fiscal
		FROM documentos_fiscais
		WHERE empresa_id = $1 AND serie = $2 AND tipo_documento = $3
		ORDER BY numero DESC
		LIMIT 1`
	var hash string
	err := r.q.QueryRow(context.Background(), query, empresaID, serie, tipo).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("ultimo hash: %w", err)
	}
	return hash, nil
}

// ListFAExpiraveis devolve os FA em estado emitido com vencimento anterior a ref.
func (r *DocumentoFiscalRepo) ListFAExpiraveis(empresaID string, ref time.Time) ([]*entity.DocumentoFiscal, error) {
	query := `
		SELECT ` + documentoColunas + `
		FROM documentos_fiscais
		WHERE empresa_id = $1 AND tipo_documento = 'FA' AND estado = 'emitido'
		  AND data_vencimento IS NOT NULL AND data_vencimento < $2
		ORDER BY data_vencimento`
	return r.queryDocumentos(query, empresaID, ref)
}

func (r *DocumentoFiscalRepo) queryDocumentos(query string, args ...any) ([]*entity.DocumentoFiscal, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentoFiscal
	for rows.Next() {
		doc, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

func scanDocumento(row pgx.Row) (*entity.DocumentoFiscal, error) {
	var doc entity.DocumentoFiscal
	var clienteID, clienteNome, vendaID, faturaID, motivo, motivoCancel *string
	err := row.Scan(
		&doc.ID, &doc.EmpresaID, &doc.Serie, &doc.Numero, &doc.NumeroDocumento, &doc.TipoDocumento, &doc.Estado,
		&clienteID, &clienteNome, &vendaID, &faturaID,
		&doc.BaseTributavel, &doc.TotalIVA, &doc.TotalRetencao, &doc.TotalLiquido,
		&motivo, &motivoCancel, &doc.HashFiscal,
		&doc.DataEmissao, &doc.DataVencimento, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.ClienteID = derefStr(clienteID)
	doc.ClienteNome = derefStr(clienteNome)
	doc.VendaID = derefStr(vendaID)
	doc.FaturaID = derefStr(faturaID)
	doc.Motivo = derefStr(motivo)
	doc.MotivoCancelamento = derefStr(motivoCancel)
	return &doc, nil
}
