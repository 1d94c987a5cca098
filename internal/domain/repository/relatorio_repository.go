package repository

import (
	"context"
	"time"

	"github.com/omunga/faturacao-api/internal/domain/entity"
)

// RelatorioRepository define as consultas read-only que alimentam o
// dashboard e os relatórios. A agregação em si é feita em memória pelo caso
// de uso, recalculada a cada leitura (sem cache): correção por simplicidade.
type RelatorioRepository interface {
	// ListDocumentosPeriodo devolve os documentos emitidos no intervalo dado
	// (qualquer estado; o caso de uso decide o que contar).
	ListDocumentosPeriodo(ctx context.Context, empresaID string, inicio, fim time.Time) ([]*entity.DocumentoFiscal, error)
	// ListDocumentosAno devolve os documentos do ano civil indicado.
	ListDocumentosAno(ctx context.Context, empresaID string, ano int) ([]*entity.DocumentoFiscal, error)
	// ListFTVencidas devolve FT não liquidadas com vencimento anterior a ref.
	ListFTVencidas(ctx context.Context, empresaID string, ref time.Time) ([]*entity.DocumentoFiscal, error)
}
