package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/domain/entity"
)

// DocumentoFiscalFiltro filtros de listagem de documentos fiscais.
type DocumentoFiscalFiltro struct {
	Tipo       entity.TipoDocumento
	Estado     entity.EstadoDocumento
	ClienteID  string
	DataInicio *time.Time
	DataFim    *time.Time
	Limit      int
	Offset     int
}

// DocumentoFiscalRepository define o porto de persistência do documento
// fiscal e das suas linhas.
type DocumentoFiscalRepository interface {
	Create(doc *entity.DocumentoFiscal) error
	CreateItem(item *entity.ItemDocumento) error
	GetByID(id string) (*entity.DocumentoFiscal, error)
	GetItens(documentoID string) ([]*entity.ItemDocumento, error)
	// UpdateEstado altera estado e motivo de cancelamento; nunca toca nos totais.
	UpdateEstado(id string, estado entity.EstadoDocumento, motivoCancelamento string) error
	ListByEmpresa(empresaID string, filtro DocumentoFiscalFiltro) ([]*entity.DocumentoFiscal, int, error)
	// ListDerivados devolve os documentos cujo FaturaID aponta para o documento dado.
	ListDerivados(documentoID string) ([]*entity.DocumentoFiscal, error)
	// SomaRecibos soma o total_liquido dos RC não cancelados com origem no documento.
	SomaRecibos(documentoID string) (decimal.Decimal, error)
	// UltimoHash devolve o hash fiscal do último documento da série (cadeia de auditoria).
	UltimoHash(empresaID, serie string, tipo entity.TipoDocumento) (string, error)
	// ListFAExpiraveis devolve os FA em estado emitido com vencimento anterior a ref.
	ListFAExpiraveis(empresaID string, ref time.Time) ([]*entity.DocumentoFiscal, error)
}
