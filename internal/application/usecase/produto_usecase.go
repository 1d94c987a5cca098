// Package usecase contém os casos de uso CRUD do catálogo: produtos,
// clientes, categorias e fornecedores. A lógica com efeitos fiscais ou de
// stock vive nos pacotes fiscal, stock e vendas.
package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// taxasIVA taxas de IVA admitidas (regime angolano).
var taxasIVA = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromInt(5),
	decimal.NewFromInt(7),
	decimal.NewFromInt(14),
}

func taxaIVAValida(taxa decimal.Decimal) bool {
	for _, t := range taxasIVA {
		if taxa.Equal(t) {
			return true
		}
	}
	return false
}

// ProdutoUseCase CRUD de produtos e serviços. O stock nunca se altera aqui:
// só via movimentos ou emissão de documentos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto ou serviço. O código é único por empresa; o stock
// inicial é zero (entra via movimento de compra ou ajuste).
func (uc *ProdutoUseCase) Create(empresaID string, in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	campos := map[string]string{}
	if in.Codigo == "" {
		campos["codigo"] = "obrigatório"
	}
	if in.Nome == "" {
		campos["nome"] = "obrigatório"
	}
	if in.Tipo != entity.TipoProdutoFisico && in.Tipo != entity.TipoProdutoServico {
		campos["tipo"] = "deve ser produto ou servico"
	}
	if in.PrecoVenda.LessThan(decimal.Zero) {
		campos["preco_venda"] = "não pode ser negativo"
	}
	if !taxaIVAValida(in.TaxaIVA) {
		campos["taxa_iva"] = "taxa admitida: 0, 5, 7 ou 14"
	}
	if in.Tipo == entity.TipoProdutoFisico && !in.Retencao.IsZero() {
		campos["retencao"] = "retenção só se aplica a serviços"
	}
	if len(campos) > 0 {
		return nil, domain.NewValidationError(campos)
	}

	existente, _ := uc.repo.GetByEmpresaECodigo(empresaID, in.Codigo)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		CategoriaID:     in.CategoriaID,
		FornecedorID:    in.FornecedorID,
		Codigo:          in.Codigo,
		Nome:            in.Nome,
		Descricao:       in.Descricao,
		Tipo:            in.Tipo,
		PrecoVenda:      in.PrecoVenda,
		TaxaIVA:         in.TaxaIVA,
		Retencao:        in.Retencao,
		EstoqueAtual:    decimal.Zero,
		EstoqueMinimo:   in.EstoqueMinimo,
		DuracaoEstimada: in.DuracaoEstimada,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto da empresa.
func (uc *ProdutoUseCase) GetByID(empresaID, id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil || produto == nil {
		return nil, domain.ErrNotFound
	}
	if produto.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toProdutoResponse(produto), nil
}

// Update atualiza campos do produto. Tipo e código são imutáveis; o stock
// nunca se altera aqui.
func (uc *ProdutoUseCase) Update(empresaID, id string, in dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil || produto == nil {
		return nil, domain.ErrNotFound
	}
	if produto.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Nome != nil {
		produto.Nome = *in.Nome
	}
	if in.Descricao != nil {
		produto.Descricao = *in.Descricao
	}
	if in.CategoriaID != nil {
		produto.CategoriaID = *in.CategoriaID
	}
	if in.FornecedorID != nil {
		produto.FornecedorID = *in.FornecedorID
	}
	if in.PrecoVenda != nil {
		if in.PrecoVenda.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError(map[string]string{"preco_venda": "não pode ser negativo"})
		}
		produto.PrecoVenda = *in.PrecoVenda
	}
	if in.TaxaIVA != nil {
		if !taxaIVAValida(*in.TaxaIVA) {
			return nil, domain.NewValidationError(map[string]string{"taxa_iva": "taxa admitida: 0, 5, 7 ou 14"})
		}
		produto.TaxaIVA = *in.TaxaIVA
	}
	if in.Retencao != nil {
		if !produto.EServico() && !in.Retencao.IsZero() {
			return nil, domain.NewValidationError(map[string]string{"retencao": "retenção só se aplica a serviços"})
		}
		produto.Retencao = *in.Retencao
	}
	if in.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *in.EstoqueMinimo
	}
	if in.DuracaoEstimada != nil {
		produto.DuracaoEstimada = *in.DuracaoEstimada
	}
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// List lista os produtos da empresa, paginados.
func (uc *ProdutoUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.ProdutoResponse, int, error) {
	page.DefaultPage()
	produtos, total, err := uc.repo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, toProdutoResponse(p))
	}
	return out, total, nil
}

// Delete soft delete do produto. Documentos antigos continuam a referenciá-lo.
func (uc *ProdutoUseCase) Delete(empresaID, id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil || produto == nil {
		return domain.ErrNotFound
	}
	if produto.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		Nome:            p.Nome,
		Descricao:       p.Descricao,
		Tipo:            p.Tipo,
		CategoriaID:     p.CategoriaID,
		FornecedorID:    p.FornecedorID,
		PrecoVenda:      p.PrecoVenda,
		TaxaIVA:         p.TaxaIVA,
		Retencao:        p.Retencao,
		EstoqueAtual:    p.EstoqueAtual,
		EstoqueMinimo:   p.EstoqueMinimo,
		EstoqueBaixo:    p.EstaEstoqueBaixo(),
		DuracaoEstimada: p.DuracaoEstimada,
	}
}
