package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de produto.
const (
	TipoProdutoFisico  = "produto"
	TipoProdutoServico = "servico"
)

// Produto representa um produto físico (com stock) ou um serviço (com
// retenção e duração estimada). Soft delete via DeletedAt; nunca é purgado
// enquanto houver documentos que o referenciam.
type Produto struct {
	ID               string
	EmpresaID        string
	CategoriaID      string
	FornecedorID     string
	Codigo           string // único por empresa
	Nome             string
	Descricao        string
	Tipo             string // produto | servico
	PrecoVenda       decimal.Decimal
	TaxaIVA          decimal.Decimal // percentagem (IVA Angola: 0, 5, 7, 14)
	Retencao         decimal.Decimal // percentagem de retenção na fonte (só serviços)
	EstoqueAtual     decimal.Decimal
	EstoqueMinimo    decimal.Decimal
	DuracaoEstimada  int // minutos (só serviços)
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// EServico indica se o produto é um serviço (sem semântica de stock).
func (p *Produto) EServico() bool {
	return p.Tipo == TipoProdutoServico
}

// EstaEstoqueBaixo: stock atual igual ou abaixo do mínimo. Sempre false para serviços.
func (p *Produto) EstaEstoqueBaixo() bool {
	if p.EServico() {
		return false
	}
	return p.EstoqueAtual.LessThanOrEqual(p.EstoqueMinimo) && p.EstoqueAtual.GreaterThan(decimal.Zero)
}

// EstaSemEstoque: stock atual igual ou abaixo de zero. Sempre false para serviços.
func (p *Produto) EstaSemEstoque() bool {
	if p.EServico() {
		return false
	}
	return p.EstoqueAtual.LessThanOrEqual(decimal.Zero)
}

// TaxaRetencaoAplicavel devolve a retenção da linha: só serviços retêm.
func (p *Produto) TaxaRetencaoAplicavel() decimal.Decimal {
	if p.EServico() {
		return p.Retencao
	}
	return decimal.Zero
}
