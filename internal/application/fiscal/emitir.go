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

// linhaPreparada é uma linha validada e calculada, pronta a persistir.
type linhaPreparada struct {
	produto *entity.Produto // nil em linhas livres
	req     dto.ItemDocumentoRequest
	calc    domfiscal.LinhaCalculada
}

// Emitir cria um documento fiscal: valida tipo, cliente e linhas, calcula os
// totais, atribui o número da série sob bloqueio e persiste documento, itens
// e saídas de stock num único commit.
//
// Regras por tipo:
//   - FT/FR/FRt descontam stock dos produtos físicos das linhas;
//   - FP nunca movimenta stock;
//   - FA pode sintetizar uma linha única a partir de dados_pagamento;
//   - NC/ND/RC nunca passam por aqui (nascem por derivação).
//
// O documento nasce em "emitido", ou "paga" se dados_pagamento cobrir o
// total dentro da tolerância de arredondamento.
func (s *Service) Emitir(ctx context.Context, empresaID, userID string, in dto.EmitirDocumentoRequest) (*dto.DocumentoResponse, error) {
	tipo := entity.TipoDocumento(in.TipoDocumento)
	if !tipo.Valido() {
		return nil, domain.NewValidationError(map[string]string{"tipo_documento": "tipo de documento desconhecido"})
	}
	if !tipo.Emissivel() {
		return nil, domain.NewValidationError(map[string]string{"tipo_documento": "NC, ND e RC nascem por derivação do documento de origem"})
	}

	// FR exige cliente resolvido: registado ou nome de consumidor final
	if tipo == entity.TipoFR && in.ClienteID == "" && in.ClienteNome == "" {
		return nil, domain.NewValidationError(map[string]string{"cliente_id": "FR exige cliente registado ou cliente_nome"})
	}

	var cliente *entity.Cliente
	if in.ClienteID != "" {
		var err error
		cliente, err = s.clienteRepo.GetByID(in.ClienteID)
		if err != nil || cliente == nil {
			return nil, domain.ErrNotFound
		}
		if cliente.EmpresaID != empresaID {
			return nil, domain.ErrForbidden
		}
	}

	var venda *entity.Venda
	if in.VendaID != "" {
		var err error
		venda, err = s.vendaRepo.GetByID(in.VendaID)
		if err != nil || venda == nil {
			return nil, domain.ErrNotFound
		}
		if venda.EmpresaID != empresaID {
			return nil, domain.ErrForbidden
		}
	}

	dataVencimento, err := parseData(in.DataVencimento)
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{"data_vencimento": "formato esperado: AAAA-MM-DD"})
	}
	if tipo == entity.TipoFA && dataVencimento == nil {
		return nil, domain.NewValidationError(map[string]string{"data_vencimento": "FA exige data de vencimento"})
	}

	itens := in.Itens
	if len(itens) == 0 {
		if tipo != entity.TipoFA || in.DadosPagamento == nil {
			return nil, domain.NewValidationError(map[string]string{"itens": "pelo menos uma linha é obrigatória"})
		}
		// FA sem linhas: sintetizar uma linha única a partir do pagamento
		if !in.DadosPagamento.Valor.GreaterThan(decimal.Zero) {
			return nil, domain.NewValidationError(map[string]string{"dados_pagamento.valor": "valor deve ser positivo"})
		}
		itens = []dto.ItemDocumentoRequest{{
			Descricao:     "Adiantamento",
			Quantidade:    decimal.NewFromInt(1),
			PrecoUnitario: in.DadosPagamento.Valor,
			TaxaIVA:       decimal.Zero,
		}}
	}

	linhas, err := s.prepararLinhas(empresaID, itens)
	if err != nil {
		return nil, err
	}

	calculadas := make([]domfiscal.LinhaCalculada, len(linhas))
	for i, l := range linhas {
		calculadas[i] = l.calc
	}
	totais := domfiscal.AgregarLinhas(calculadas)

	now := time.Now()
	serie := in.Serie
	if serie == "" {
		serie = serieDoAno(now)
	}

	estado := entity.EstadoEmitido
	if in.DadosPagamento != nil &&
		in.DadosPagamento.Valor.GreaterThanOrEqual(totais.TotalLiquido.Sub(entity.ToleranciaArredondamento)) {
		estado = entity.EstadoPaga
	}
	// FR é liquidada na emissão por definição
	if tipo == entity.TipoFR && in.DadosPagamento == nil {
		estado = entity.EstadoPaga
	}

	doc := &entity.DocumentoFiscal{
		ID:             uuid.New().String(),
		EmpresaID:      empresaID,
		Serie:          serie,
		TipoDocumento:  tipo,
		Estado:         estado,
		VendaID:        in.VendaID,
		BaseTributavel: totais.BaseTributavel,
		TotalIVA:       totais.TotalIVA,
		TotalRetencao:  totais.TotalRetencao,
		TotalLiquido:   totais.TotalLiquido,
		Motivo:         in.Motivo,
		DataEmissao:    now,
		DataVencimento: dataVencimento,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if cliente != nil {
		doc.ClienteID = cliente.ID
		doc.ClienteNome = cliente.Nome
	} else {
		doc.ClienteNome = in.ClienteNome
	}

	var itensPersistidos []*entity.ItemDocumento
	err = s.txRunner.Run(ctx, func(
		docRepo repository.DocumentoFiscalRepository,
		serieRepo repository.SerieRepository,
		_ repository.AdiantamentoRepository,
		movRepo repository.MovimentoStockRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		// 1) Numeração: incrementa o contador da série sob bloqueio de linha.
		// O bloqueio serializa a emissão concorrente na mesma série, logo o
		// número e a cadeia de hash ficam consistentes.
		numero, err := serieRepo.ProximoNumero(empresaID, serie, tipo)
		if err != nil {
			return err
		}
		doc.Numero = numero
		doc.NumeroDocumento = fmt.Sprintf("%s %s/%d", tipo, serie, numero)

		// 2) Cadeia de hash da série
		hashAnterior, err := docRepo.UltimoHash(empresaID, serie, tipo)
		if err != nil {
			return err
		}
		doc.HashFiscal = domfiscal.CalcularHash(domfiscal.HashParams{
			DataEmissao:     doc.DataEmissao,
			DataRegisto:     now,
			NumeroDocumento: doc.NumeroDocumento,
			TotalLiquido:    doc.TotalLiquido,
			HashAnterior:    hashAnterior,
		})

		// 3) Saídas de stock das linhas com produto físico (FT/FR/FRt)
		if tipo.MovimentaStock() {
			for _, l := range linhas {
				if l.produto == nil || l.produto.EServico() {
					continue
				}
				if err := registarSaidaStock(movRepo, produtoRepo, l.produto.ID, empresaID, userID,
					l.req.Quantidade, entity.TipoMovimentoVenda, doc.NumeroDocumento, now); err != nil {
					return err
				}
			}
		}

		// 4) Documento + itens
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, l := range linhas {
			item := &entity.ItemDocumento{
				ID:            uuid.New().String(),
				DocumentoID:   doc.ID,
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

		// 5) Venda associada passa a faturada
		if venda != nil && (tipo == entity.TipoFT || tipo == entity.TipoFR) {
			if err := vendaRepo.UpdateEstado(venda.ID, entity.VendaFaturada); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(doc, itensPersistidos, nil), nil
}

// prepararLinhas valida cada linha, resolve o produto (preço, IVA e retenção
// por defeito) e calcula os valores. Linhas livres exigem descrição.
func (s *Service) prepararLinhas(empresaID string, itens []dto.ItemDocumentoRequest) ([]linhaPreparada, error) {
	linhas := make([]linhaPreparada, 0, len(itens))
	for i, it := range itens {
		campo := func(nome string) string { return fmt.Sprintf("itens.%d.%s", i, nome) }
		if !it.Quantidade.GreaterThan(decimal.Zero) {
			return nil, domain.NewValidationError(map[string]string{campo("quantidade"): "deve ser positiva"})
		}
		if it.PrecoUnitario.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError(map[string]string{campo("preco_unitario"): "não pode ser negativo"})
		}
		if it.TaxaIVA.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError(map[string]string{campo("taxa_iva"): "não pode ser negativa"})
		}
		if it.Desconto.LessThan(decimal.Zero) || it.Desconto.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.NewValidationError(map[string]string{campo("desconto"): "deve estar entre 0 e 100"})
		}

		var produto *entity.Produto
		retencao := decimal.Zero
		if it.ProdutoID != "" {
			var err error
			produto, err = s.produtoRepo.GetByID(it.ProdutoID)
			if err != nil || produto == nil {
				return nil, domain.ErrNotFound
			}
			if produto.EmpresaID != empresaID {
				return nil, domain.ErrForbidden
			}
			if it.Descricao == "" {
				it.Descricao = produto.Nome
			}
			if it.PrecoUnitario.IsZero() {
				it.PrecoUnitario = produto.PrecoVenda
			}
			if it.TaxaIVA.IsZero() {
				it.TaxaIVA = produto.TaxaIVA
			}
			retencao = produto.TaxaRetencaoAplicavel()
		} else if it.Descricao == "" {
			return nil, domain.NewValidationError(map[string]string{campo("descricao"): "linha livre exige descrição"})
		}

		linhas = append(linhas, linhaPreparada{
			produto: produto,
			req:     it,
			calc:    domfiscal.CalcularLinha(it.Quantidade, it.PrecoUnitario, it.TaxaIVA, it.Desconto, retencao),
		})
	}
	return linhas, nil
}

// registarSaidaStock bloqueia a linha do produto, verifica disponibilidade e
// escreve movimento + novo estoque_atual na mesma transação do documento.
func registarSaidaStock(
	movRepo repository.MovimentoStockRepository,
	produtoRepo repository.ProdutoRepository,
	produtoID, empresaID, userID string,
	quantidade decimal.Decimal,
	tipoMovimento, referencia string,
	now time.Time,
) error {
	produto, err := produtoRepo.GetByIDForUpdate(produtoID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	if produto.EstoqueAtual.LessThan(quantidade) {
		return domain.ErrStockInsuficiente
	}
	anterior := produto.EstoqueAtual
	novo := anterior.Sub(quantidade)
	if err := produtoRepo.UpdateEstoque(produtoID, novo); err != nil {
		return err
	}
	mov := &entity.MovimentoStock{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		ProdutoID:       produtoID,
		Tipo:            entity.MovimentoSaida,
		TipoMovimento:   tipoMovimento,
		Quantidade:      quantidade,
		EstoqueAnterior: anterior,
		EstoqueNovo:     novo,
		Referencia:      referencia,
		CreatedAt:       now,
		CreatedBy:       userID,
	}
	return movRepo.Create(mov)
}
