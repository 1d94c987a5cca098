package fiscal

import (
	"context"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// Cancelar marca o documento como cancelado com o motivo dado. Transição de
// sentido único: um documento cancelado nunca volta a qualquer outro estado.
//
// O cancelamento não reverte movimentos de stock nem recibos já emitidos —
// documentos e stock são livros independentes; a reversão é uma decisão de
// negócio registada como devolução ou NC.
func (s *Service) Cancelar(ctx context.Context, empresaID, userID, documentoID string, in dto.CancelarRequest) (*dto.DocumentoResponse, error) {
	if len(in.Motivo) < 10 {
		return nil, domain.NewValidationError(map[string]string{"motivo": "mínimo de 10 caracteres"})
	}

	doc, err := s.docRepo.GetByID(documentoID)
	if err != nil || doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if doc.Estado == entity.EstadoCancelado {
		return nil, domain.ErrDocumentoCancelado
	}
	if !doc.PodeCancelar() {
		return nil, domain.ErrEstadoTerminal
	}

	err = s.txRunner.Run(ctx, func(
		docRepo repository.DocumentoFiscalRepository,
		_ repository.SerieRepository,
		_ repository.AdiantamentoRepository,
		_ repository.MovimentoStockRepository,
		_ repository.ProdutoRepository,
		_ repository.VendaRepository,
	) error {
		return docRepo.UpdateEstado(doc.ID, entity.EstadoCancelado, in.Motivo)
	})
	if err != nil {
		return nil, err
	}
	doc.Estado = entity.EstadoCancelado
	doc.MotivoCancelamento = in.Motivo
	return s.toResponse(doc, nil, nil), nil
}
