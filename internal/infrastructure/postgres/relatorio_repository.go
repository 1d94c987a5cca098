package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo implementação read-only de RelatorioRepository. Recebe o
// contexto do pedido porque as consultas do dashboard correm em paralelo e
// devem ser canceláveis.
type RelatorioRepo struct {
	q Querier
}

// NewRelatorioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// ListDocumentosPeriodo devolve os documentos emitidos no intervalo dado.
func (r *RelatorioRepo) ListDocumentosPeriodo(ctx context.Context, empresaID string, inicio, fim time.Time) ([]*entity.DocumentoFiscal, error) {
	query := `
		SELECT ` + documentoColunas + `
		FROM documentos_fiscais
		WHERE empresa_id = $1 AND data_emissao >= $2 AND data_emissao < $3
		ORDER BY data_emissao`
	return r.queryDocumentos(ctx, query, empresaID, inicio, fim)
}

// ListDocumentosAno devolve os documentos do ano civil indicado.
func (r *RelatorioRepo) ListDocumentosAno(ctx context.Context, empresaID string, ano int) ([]*entity.DocumentoFiscal, error) {
	inicio := time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(1, 0, 0)
	return r.ListDocumentosPeriodo(ctx, empresaID, inicio, fim)
}

// ListFTVencidas devolve FT não liquidadas com vencimento anterior a ref.
func (r *RelatorioRepo) ListFTVencidas(ctx context.Context, empresaID string, ref time.Time) ([]*entity.DocumentoFiscal, error) {
	query := `
		SELECT ` + documentoColunas + `
		FROM documentos_fiscais
		WHERE empresa_id = $1 AND tipo_documento = 'FT'
		  AND estado IN ('emitido', 'parcialmente_paga')
		  AND data_vencimento IS NOT NULL AND data_vencimento < $2
		ORDER BY data_vencimento`
	return r.queryDocumentos(ctx, query, empresaID, ref)
}

func (r *RelatorioRepo) queryDocumentos(ctx context.Context, query string, args ...any) ([]*entity.DocumentoFiscal, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documentos relatorio: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentoFiscal
	for rows.Next() {
		doc, err := scanDocumento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan documento relatorio: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}
