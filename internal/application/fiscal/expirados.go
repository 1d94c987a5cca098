package fiscal

import (
	"context"
	"time"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// ProcessarExpirados é a varredura em lote disparada pela administração:
// todos os FA em "emitido" com vencimento ultrapassado passam a "expirado"
// (terminal). Devolve o número de documentos expirados.
//
// FA com pagamentos parciais não expiram — o estado parcialmente_paga já não
// admite a transição.
func (s *Service) ProcessarExpirados(ctx context.Context, empresaID string) (int, error) {
	expirados := 0
	err := s.txRunner.Run(ctx, func(
		docRepo repository.DocumentoFiscalRepository,
		_ repository.SerieRepository,
		_ repository.AdiantamentoRepository,
		_ repository.MovimentoStockRepository,
		_ repository.ProdutoRepository,
		_ repository.VendaRepository,
	) error {
		docs, err := docRepo.ListFAExpiraveis(empresaID, time.Now())
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if !doc.Expirou(time.Now()) {
				continue
			}
			if err := docRepo.UpdateEstado(doc.ID, entity.EstadoExpirado, ""); err != nil {
				return err
			}
			expirados++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expirados, nil
}
