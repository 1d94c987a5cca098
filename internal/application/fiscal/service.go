// Package fiscal implementa o motor de documentos fiscais: emissão,
// derivações (RC, NC, ND), vinculação de adiantamentos, cancelamento e a
// varredura de expirados. Todas as escritas passam pelo TxRunner; as regras
// de transição vivem nas entidades e nas funções puras de domain/fiscal.
package fiscal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// Service é o motor de documentos fiscais (DocumentoFiscalService).
// Leituras fora de transação usam os repositórios injetados; escritas correm
// sempre dentro do TxRunner.
type Service struct {
	txRunner    TxRunner
	docRepo     repository.DocumentoFiscalRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	adiantRepo  repository.AdiantamentoRepository
	vendaRepo   repository.VendaRepository
}

// NewService constrói o motor fiscal.
func NewService(
	txRunner TxRunner,
	docRepo repository.DocumentoFiscalRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	adiantRepo repository.AdiantamentoRepository,
	vendaRepo repository.VendaRepository,
) *Service {
	return &Service{
		txRunner:    txRunner,
		docRepo:     docRepo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
		adiantRepo:  adiantRepo,
		vendaRepo:   vendaRepo,
	}
}

// ValorPendente calcula o saldo por liquidar de um documento:
// total_liquido − Σ recibos não cancelados − Σ adiantamentos vinculados.
// É a régua de todas as operações de pagamento; nunca fica negativo.
func (s *Service) ValorPendente(doc *entity.DocumentoFiscal) (decimal.Decimal, error) {
	return s.valorPendenteCom(s.docRepo, s.adiantRepo, doc)
}

func (s *Service) valorPendenteCom(
	docRepo repository.DocumentoFiscalRepository,
	adiantRepo repository.AdiantamentoRepository,
	doc *entity.DocumentoFiscal,
) (decimal.Decimal, error) {
	recibos, err := docRepo.SomaRecibos(doc.ID)
	if err != nil {
		return decimal.Zero, err
	}
	pendente := doc.TotalLiquido.Sub(recibos)
	if doc.TipoDocumento == entity.TipoFT {
		vinculado, err := adiantRepo.SomaVinculadoAFatura(doc.ID)
		if err != nil {
			return decimal.Zero, err
		}
		pendente = pendente.Sub(vinculado)
	}
	if pendente.LessThan(decimal.Zero) {
		pendente = decimal.Zero
	}
	return pendente, nil
}

// estadoPorPendente decide o novo estado após um pagamento: liquidado dentro
// da tolerância de arredondamento conta como paga.
func estadoPorPendente(pendente decimal.Decimal) entity.EstadoDocumento {
	if pendente.LessThanOrEqual(entity.ToleranciaArredondamento) {
		return entity.EstadoPaga
	}
	return entity.EstadoParcialmentePaga
}

// parseData aceita datas "2006-01-02"; string vazia devolve nil.
func parseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.NewValidationError(map[string]string{"data": "formato esperado: AAAA-MM-DD"})
	}
	return &t, nil
}

// serieDoAno devolve a série por defeito quando o pedido não indica uma:
// "A" + ano civil, ex.: "A2026".
func serieDoAno(ref time.Time) string {
	return "A" + ref.Format("2006")
}

func (s *Service) toResponse(doc *entity.DocumentoFiscal, itens []*entity.ItemDocumento, pendente *decimal.Decimal) *dto.DocumentoResponse {
	resp := &dto.DocumentoResponse{
		ID:                 doc.ID,
		NumeroDocumento:    doc.NumeroDocumento,
		Serie:              doc.Serie,
		Numero:             doc.Numero,
		TipoDocumento:      string(doc.TipoDocumento),
		Estado:             string(doc.Estado),
		ClienteID:          doc.ClienteID,
		ClienteNome:        doc.ClienteNome,
		VendaID:            doc.VendaID,
		FaturaID:           doc.FaturaID,
		BaseTributavel:     doc.BaseTributavel,
		TotalIVA:           doc.TotalIVA,
		TotalRetencao:      doc.TotalRetencao,
		TotalLiquido:       doc.TotalLiquido,
		ValorPendente:      pendente,
		Motivo:             doc.Motivo,
		MotivoCancelamento: doc.MotivoCancelamento,
		HashFiscal:         doc.HashFiscal,
		DataEmissao:        doc.DataEmissao.Format("2006-01-02"),
	}
	if doc.DataVencimento != nil {
		resp.DataVencimento = doc.DataVencimento.Format("2006-01-02")
	}
	for _, it := range itens {
		resp.Itens = append(resp.Itens, dto.ItemDocumentoResponse{
			ID:            it.ID,
			ProdutoID:     it.ProdutoID,
			Descricao:     it.Descricao,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			TaxaIVA:       it.TaxaIVA,
			Desconto:      it.Desconto,
			ValorIVA:      it.ValorIVA,
			ValorRetencao: it.ValorRetencao,
			TotalLinha:    it.TotalLinha,
		})
	}
	return resp
}
