package fiscal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	domfiscal "github.com/omunga/faturacao-api/internal/domain/fiscal"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// GerarRecibo cria um RC com origem num FT ou FA e atualiza o estado do
// documento de origem: "paga" se o pendente ficar liquidado, senão
// "parcialmente_paga".
//
// Rejeita com erro de domínio (422): documento fechado, tipo incompatível e
// valor acima do saldo pendente.
func (s *Service) GerarRecibo(ctx context.Context, empresaID, userID, documentoID string, in dto.GerarReciboRequest) (*dto.DocumentoResponse, error) {
	if !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError(map[string]string{"valor": "deve ser positivo"})
	}
	if in.MetodoPagamento == "" {
		return nil, domain.NewValidationError(map[string]string{"metodo_pagamento": "obrigatório"})
	}

	doc, err := s.docRepo.GetByID(documentoID)
	if err != nil || doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if !doc.TipoDocumento.AdmiteRecibo() {
		return nil, domain.ErrTipoIncompativel
	}
	if doc.Estado == entity.EstadoCancelado {
		return nil, domain.ErrDocumentoCancelado
	}
	if !doc.Estado.AdmitePagamento() {
		return nil, domain.ErrDocumentoFechado
	}

	dataPagamento := time.Now()
	if d, err := parseData(in.DataPagamento); err != nil {
		return nil, err
	} else if d != nil {
		dataPagamento = *d
	}

	var recibo *entity.DocumentoFiscal
	err = s.txRunner.Run(ctx, func(
		docRepo repository.DocumentoFiscalRepository,
		serieRepo repository.SerieRepository,
		adiantRepo repository.AdiantamentoRepository,
		_ repository.MovimentoStockRepository,
		_ repository.ProdutoRepository,
		_ repository.VendaRepository,
	) error {
		// Pendente calculado dentro da transação para não sobre-liquidar
		// com dois recibos concorrentes.
		pendente, err := s.valorPendenteCom(docRepo, adiantRepo, doc)
		if err != nil {
			return err
		}
		if in.Valor.GreaterThan(pendente) {
			return domain.ErrValorExcedePendente
		}

		now := time.Now()
		numero, err := serieRepo.ProximoNumero(empresaID, doc.Serie, entity.TipoRC)
		if err != nil {
			return err
		}
		hashAnterior, err := docRepo.UltimoHash(empresaID, doc.Serie, entity.TipoRC)
		if err != nil {
			return err
		}

		recibo = &entity.DocumentoFiscal{
			ID:              uuid.New().String(),
			EmpresaID:       empresaID,
			Serie:           doc.Serie,
			Numero:          numero,
			NumeroDocumento: fmt.Sprintf("%s %s/%d", entity.TipoRC, doc.Serie, numero),
			TipoDocumento:   entity.TipoRC,
			Estado:          entity.EstadoPaga, // um recibo nasce liquidado
			ClienteID:       doc.ClienteID,
			ClienteNome:     doc.ClienteNome,
			FaturaID:        doc.ID,
			BaseTributavel:  in.Valor,
			TotalIVA:        decimal.Zero,
			TotalRetencao:   decimal.Zero,
			TotalLiquido:    in.Valor,
			Motivo:          in.Referencia,
			DataEmissao:     dataPagamento,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		recibo.HashFiscal = domfiscal.CalcularHash(domfiscal.HashParams{
			DataEmissao:     recibo.DataEmissao,
			DataRegisto:     now,
			NumeroDocumento: recibo.NumeroDocumento,
			TotalLiquido:    recibo.TotalLiquido,
			HashAnterior:    hashAnterior,
		})
		if err := docRepo.Create(recibo); err != nil {
			return err
		}
		if err := docRepo.CreateItem(&entity.ItemDocumento{
			ID:            uuid.New().String(),
			DocumentoID:   recibo.ID,
			Descricao:     fmt.Sprintf("Pagamento %s de %s", in.MetodoPagamento, doc.NumeroDocumento),
			Quantidade:    decimal.NewFromInt(1),
			PrecoUnitario: in.Valor,
			TaxaIVA:       decimal.Zero,
			ValorIVA:      decimal.Zero,
			ValorRetencao: decimal.Zero,
			TotalLinha:    in.Valor,
		}); err != nil {
			return err
		}

		novoEstado := estadoPorPendente(pendente.Sub(in.Valor))
		if err := docRepo.UpdateEstado(doc.ID, novoEstado, ""); err != nil {
			return err
		}
		doc.Estado = novoEstado
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(recibo, nil, nil), nil
}
