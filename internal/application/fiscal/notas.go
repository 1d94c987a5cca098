package fiscal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	domfiscal "github.com/omunga/faturacao-api/internal/domain/fiscal"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// CriarNotaCredito deriva uma NC de um FT/FR não cancelado.
func (s *Service) CriarNotaCredito(ctx context.Context, empresaID, userID, documentoID string, in dto.NotaRequest) (*dto.DocumentoResponse, error) {
	return s.criarNota(ctx, entity.TipoNC, empresaID, userID, documentoID, in)
}

// CriarNotaDebito deriva uma ND de um FT/FR não cancelado.
func (s *Service) CriarNotaDebito(ctx context.Context, empresaID, userID, documentoID string, in dto.NotaRequest) (*dto.DocumentoResponse, error) {
	return s.criarNota(ctx, entity.TipoND, empresaID, userID, documentoID, in)
}

// criarNota cria a NC/ND ligada ao documento de origem. Uma nota é um
// instrumento fiscal independente: os totais da origem nunca são alterados —
// a NC reduz (e a ND aumenta) o valor a receber do cliente apenas na camada
// de relatórios.
func (s *Service) criarNota(ctx context.Context, tipo entity.TipoDocumento, empresaID, userID, documentoID string, in dto.NotaRequest) (*dto.DocumentoResponse, error) {
	if len(in.Itens) == 0 {
		return nil, domain.NewValidationError(map[string]string{"itens": "pelo menos uma linha é obrigatória"})
	}
	if len(in.Motivo) < 10 {
		return nil, domain.NewValidationError(map[string]string{"motivo": "mínimo de 10 caracteres"})
	}

	origem, err := s.docRepo.GetByID(documentoID)
	if err != nil || origem == nil {
		return nil, domain.ErrNotFound
	}
	if origem.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if origem.Estado == entity.EstadoCancelado {
		return nil, domain.ErrDocumentoCancelado
	}
	if !origem.TipoDocumento.AdmiteNota() {
		return nil, domain.ErrTipoIncompativel
	}

	linhas, err := s.prepararLinhas(empresaID, in.Itens)
	if err != nil {
		return nil, err
	}
	calculadas := make([]domfiscal.LinhaCalculada, len(linhas))
	for i, l := range linhas {
		calculadas[i] = l.calc
	}
	totais := domfiscal.AgregarLinhas(calculadas)

	now := time.Now()
	nota := &entity.DocumentoFiscal{
		ID:             uuid.New().String(),
		EmpresaID:      empresaID,
		Serie:          origem.Serie,
		TipoDocumento:  tipo,
		Estado:         entity.EstadoEmitido,
		ClienteID:      origem.ClienteID,
		ClienteNome:    origem.ClienteNome,
		FaturaID:       origem.ID,
		BaseTributavel: totais.BaseTributavel,
		TotalIVA:       totais.TotalIVA,
		TotalRetencao:  totais.TotalRetencao,
		TotalLiquido:   totais.TotalLiquido,
		Motivo:         in.Motivo,
		DataEmissao:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var itensPersistidos []*entity.ItemDocumento
	err = s.txRunner.Run(ctx, func(
		docRepo repository.DocumentoFiscalRepository,
		serieRepo repository.SerieRepository,
		_ repository.AdiantamentoRepository,
		_ repository.MovimentoStockRepository,
		_ repository.ProdutoRepository,
		_ repository.VendaRepository,
	) error {
		numero, err := serieRepo.ProximoNumero(empresaID, nota.Serie, tipo)
		if err != nil {
			return err
		}
		nota.Numero = numero
		nota.NumeroDocumento = fmt.Sprintf("%s %s/%d", tipo, nota.Serie, numero)

		hashAnterior, err := docRepo.UltimoHash(empresaID, nota.Serie, tipo)
		if err != nil {
			return err
		}
		nota.HashFiscal = domfiscal.CalcularHash(domfiscal.HashParams{
			DataEmissao:     nota.DataEmissao,
			DataRegisto:     now,
			NumeroDocumento: nota.NumeroDocumento,
			TotalLiquido:    nota.TotalLiquido,
			HashAnterior:    hashAnterior,
		})

		if err := docRepo.Create(nota); err != nil {
			return err
		}
		for _, l := range linhas {
			item := &entity.ItemDocumento{
				ID:            uuid.New().String(),
				DocumentoID:   nota.ID,
				ProdutoID:     l.req.ProdutoID,
				Descricao:     l.req.Descricao,
				Quantidade:    l.req.Quantidade,
				PrecoUnitario: l.req.PrecoUnitario,
				TaxaIVA:       l.req.TaxaIVA,
				Desconto:      l.req.Desconto,
				ValorIVA:      l.calc.ValorIVA,
				ValorRetencao: l.calc.ValorRetencao,
				TotalLinha:    l.calc.TotalLinha,
			}
			if err := docRepo.CreateItem(item); err != nil {
				return err
			}
			itensPersistidos = append(itensPersistidos, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(nota, itensPersistidos, nil), nil
}
