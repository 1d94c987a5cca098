// Package vendas implementa o registo de vendas (carrinho) e a sua
// faturação. Uma venda é um rascunho comercial: não movimenta stock nem tem
// efeitos fiscais até ser faturada pelo motor fiscal.
package vendas

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

// Emissor é o contrato do motor fiscal usado na faturação da venda.
type Emissor interface {
	Emitir(ctx context.Context, empresaID, userID string, in dto.EmitirDocumentoRequest) (*dto.DocumentoResponse, error)
}

// UseCase regista, consulta e fatura vendas.
type UseCase struct {
	vendaRepo   repository.VendaRepository
	produtoRepo repository.ProdutoRepository
	clienteRepo repository.ClienteRepository
	emissor     Emissor
}

// NewUseCase constrói o caso de uso de vendas.
func NewUseCase(
	vendaRepo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	emissor Emissor,
) *UseCase {
	return &UseCase{vendaRepo: vendaRepo, produtoRepo: produtoRepo, clienteRepo: clienteRepo, emissor: emissor}
}

// CriarVenda valida as linhas contra o catálogo, calcula os totais e cria a
// venda em "pendente". O preço por defeito é o do produto; o stock não é
// verificado aqui — a verificação vinculativa acontece na faturação.
func (uc *UseCase) CriarVenda(ctx context.Context, empresaID, userID string, in dto.CriarVendaRequest) (*dto.VendaResponse, error) {
	if len(in.Itens) == 0 {
		return nil, domain.NewValidationError(map[string]string{"itens": "pelo menos uma linha é obrigatória"})
	}
	if in.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil || cliente == nil {
			return nil, domain.ErrNotFound
		}
		if cliente.EmpresaID != empresaID {
			return nil, domain.ErrForbidden
		}
	}

	venda := &entity.Venda{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		ClienteID:   in.ClienteID,
		Estado:      entity.VendaPendente,
		Observacoes: in.Observacoes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		CreatedBy:   userID,
	}

	var itens []*entity.ItemVenda
	subtotal, totalDesconto, totalIVA := decimal.Zero, decimal.Zero, decimal.Zero
	for i, it := range in.Itens {
		campo := func(nome string) string { return fmt.Sprintf("itens.%d.%s", i, nome) }
		if it.ProdutoID == "" {
			return nil, domain.NewValidationError(map[string]string{campo("produto_id"): "obrigatório"})
		}
		if !it.Quantidade.GreaterThan(decimal.Zero) {
			return nil, domain.NewValidationError(map[string]string{campo("quantidade"): "deve ser positiva"})
		}
		if it.Desconto.LessThan(decimal.Zero) || it.Desconto.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.NewValidationError(map[string]string{campo("desconto"): "deve estar entre 0 e 100"})
		}
		produto, err := uc.produtoRepo.GetByID(it.ProdutoID)
		if err != nil || produto == nil {
			return nil, domain.ErrNotFound
		}
		if produto.EmpresaID != empresaID {
			return nil, domain.ErrForbidden
		}
		preco := it.PrecoUnitario
		if preco.IsZero() {
			preco = produto.PrecoVenda
		}

		calc := domfiscal.CalcularLinha(it.Quantidade, preco, produto.TaxaIVA, it.Desconto, decimal.Zero)
		bruto := it.Quantidade.Mul(preco).Round(2)

		itens = append(itens, &entity.ItemVenda{
			ID:            uuid.New().String(),
			VendaID:       venda.ID,
			ProdutoID:     produto.ID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: preco,
			TaxaIVA:       produto.TaxaIVA,
			Desconto:      it.Desconto,
			TotalLinha:    calc.TotalLinha,
		})
		subtotal = subtotal.Add(bruto)
		totalDesconto = totalDesconto.Add(bruto.Sub(calc.TotalLinha))
		totalIVA = totalIVA.Add(calc.ValorIVA)
	}

	venda.Subtotal = subtotal
	venda.TotalDesconto = totalDesconto
	venda.TotalIVA = totalIVA
	venda.Total = subtotal.Sub(totalDesconto).Add(totalIVA)

	if err := uc.vendaRepo.Create(venda); err != nil {
		return nil, err
	}
	for _, item := range itens {
		if err := uc.vendaRepo.CreateItem(item); err != nil {
			return nil, err
		}
	}
	return toVendaResponse(venda, itens), nil
}

// Faturar emite o documento fiscal (FT ou FR) a partir das linhas da venda.
// A emissão corre no motor fiscal, que desconta o stock e marca a venda como
// faturada na mesma transação do documento.
func (uc *UseCase) Faturar(ctx context.Context, empresaID, userID, vendaID string, in dto.FaturarVendaRequest) (*dto.DocumentoResponse, error) {
	tipo := entity.TipoDocumento(in.TipoDocumento)
	if tipo != entity.TipoFT && tipo != entity.TipoFR {
		return nil, domain.NewValidationError(map[string]string{"tipo_documento": "faturação de venda emite FT ou FR"})
	}

	venda, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil || venda == nil {
		return nil, domain.ErrNotFound
	}
	if venda.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if venda.Estado != entity.VendaPendente {
		return nil, domain.ErrDocumentoFechado
	}

	itens, err := uc.vendaRepo.GetItens(venda.ID)
	if err != nil {
		return nil, err
	}
	if len(itens) == 0 {
		return nil, domain.NewValidationError(map[string]string{"itens": "venda sem linhas"})
	}

	req := dto.EmitirDocumentoRequest{
		TipoDocumento:  in.TipoDocumento,
		Serie:          in.Serie,
		ClienteID:      venda.ClienteID,
		VendaID:        venda.ID,
		DataVencimento: in.DataVencimento,
		DadosPagamento: in.DadosPagamento,
	}
	if tipo == entity.TipoFR && venda.ClienteID == "" {
		req.ClienteNome = "Consumidor Final"
	}
	for _, it := range itens {
		req.Itens = append(req.Itens, dto.ItemDocumentoRequest{
			ProdutoID:     it.ProdutoID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			TaxaIVA:       it.TaxaIVA,
			Desconto:      it.Desconto,
		})
	}
	return uc.emissor.Emitir(ctx, empresaID, userID, req)
}

// CancelarVenda marca uma venda pendente como cancelada. Vendas faturadas
// não se cancelam aqui — cancela-se o documento fiscal.
func (uc *UseCase) CancelarVenda(ctx context.Context, empresaID, vendaID string) error {
	venda, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil || venda == nil {
		return domain.ErrNotFound
	}
	if venda.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	if venda.Estado != entity.VendaPendente {
		return domain.ErrDocumentoFechado
	}
	return uc.vendaRepo.UpdateEstado(venda.ID, entity.VendaCancelada)
}

// GetVenda devolve a venda com as linhas.
func (uc *UseCase) GetVenda(ctx context.Context, empresaID, vendaID string) (*dto.VendaResponse, error) {
	venda, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil || venda == nil {
		return nil, domain.ErrNotFound
	}
	if venda.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	itens, err := uc.vendaRepo.GetItens(venda.ID)
	if err != nil {
		return nil, err
	}
	return toVendaResponse(venda, itens), nil
}

// ListVendas lista as vendas da empresa, paginadas.
func (uc *UseCase) ListVendas(ctx context.Context, empresaID string, page dto.PageRequest) ([]*dto.VendaResponse, int, error) {
	page.DefaultPage()
	vendas, total, err := uc.vendaRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		out = append(out, toVendaResponse(v, nil))
	}
	return out, total, nil
}

func toVendaResponse(v *entity.Venda, itens []*entity.ItemVenda) *dto.VendaResponse {
	resp := &dto.VendaResponse{
		ID:            v.ID,
		ClienteID:     v.ClienteID,
		Estado:        v.Estado,
		Subtotal:      v.Subtotal,
		TotalDesconto: v.TotalDesconto,
		TotalIVA:      v.TotalIVA,
		Total:         v.Total,
		Observacoes:   v.Observacoes,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range itens {
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			ID:            it.ID,
			ProdutoID:     it.ProdutoID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			TaxaIVA:       it.TaxaIVA,
			Desconto:      it.Desconto,
			TotalLinha:    it.TotalLinha,
		})
	}
	return resp
}
