package fiscal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// VincularAdiantamento aplica parte (ou todo) o valor de um FA a uma FT.
//
// Pré-condições: o valor não pode exceder nem o disponível do FA
// (total_liquido − já utilizado) nem o pendente da FT; ambos os documentos
// têm de estar abertos. Ambos os estados são atualizados pela utilização
// acumulada, dentro da mesma transação do vínculo.
func (s *Service) VincularAdiantamento(ctx context.Context, empresaID, userID, adiantamentoID string, in dto.VincularAdiantamentoRequest) (*dto.DocumentoResponse, error) {
	if !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError(map[string]string{"valor": "deve ser positivo"})
	}
	if in.FaturaID == "" {
		return nil, domain.NewValidationError(map[string]string{"fatura_id": "obrigatório"})
	}

	adiantamento, err := s.docRepo.GetByID(adiantamentoID)
	if err != nil || adiantamento == nil {
		return nil, domain.ErrNotFound
	}
	if adiantamento.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if adiantamento.TipoDocumento != entity.TipoFA {
		return nil, domain.ErrTipoIncompativel
	}
	if adiantamento.Estado == entity.EstadoCancelado || adiantamento.Estado == entity.EstadoExpirado {
		return nil, domain.ErrDocumentoCancelado
	}
	if in.Valor.GreaterThan(adiantamento.TotalLiquido) {
		return nil, domain.NewValidationError(map[string]string{"valor": "excede o total do adiantamento"})
	}

	fatura, err := s.docRepo.GetByID(in.FaturaID)
	if err != nil || fatura == nil {
		return nil, domain.ErrNotFound
	}
	if fatura.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if fatura.TipoDocumento != entity.TipoFT {
		return nil, domain.ErrTipoIncompativel
	}
	if !fatura.Estado.AdmitePagamento() {
		return nil, domain.ErrDocumentoFechado
	}

	err = s.txRunner.Run(ctx, func(
		docRepo repository.DocumentoFiscalRepository,
		_ repository.SerieRepository,
		adiantRepo repository.AdiantamentoRepository,
		_ repository.MovimentoStockRepository,
		_ repository.ProdutoRepository,
		_ repository.VendaRepository,
	) error {
		// disponível do FA = total − já utilizado
		utilizado, err := adiantRepo.SomaUtilizado(adiantamento.ID)
		if err != nil {
			return err
		}
		if in.Valor.GreaterThan(adiantamento.TotalLiquido.Sub(utilizado)) {
			return domain.ErrValorExcedePendente
		}

		// pendente da FT, recalculado dentro da transação
		pendenteFT, err := s.valorPendenteCom(docRepo, adiantRepo, fatura)
		if err != nil {
			return err
		}
		if in.Valor.GreaterThan(pendenteFT) {
			return domain.ErrValorExcedePendente
		}

		if err := adiantRepo.CreateVinculo(&entity.AdiantamentoFatura{
			ID:             uuid.New().String(),
			AdiantamentoID: adiantamento.ID,
			FaturaID:       fatura.ID,
			ValorUtilizado: in.Valor,
			CreatedAt:      time.Now(),
			CreatedBy:      userID,
		}); err != nil {
			return err
		}

		// estado da FT pela nova utilização
		estadoFT := estadoPorPendente(pendenteFT.Sub(in.Valor))
		if err := docRepo.UpdateEstado(fatura.ID, estadoFT, ""); err != nil {
			return err
		}
		fatura.Estado = estadoFT

		// estado do FA pela utilização acumulada
		estadoFA := estadoPorPendente(adiantamento.TotalLiquido.Sub(utilizado).Sub(in.Valor))
		if err := docRepo.UpdateEstado(adiantamento.ID, estadoFA, ""); err != nil {
			return err
		}
		adiantamento.Estado = estadoFA
		return nil
	})
	if err != nil {
		return nil, err
	}

	pendente, err := s.ValorPendente(fatura)
	if err != nil {
		return nil, err
	}
	return s.toResponse(fatura, nil, &pendente), nil
}
