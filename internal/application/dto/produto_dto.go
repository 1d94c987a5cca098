package dto

import "github.com/shopspring/decimal"

// CriarProdutoRequest body para POST /api/produtos. Tipo "produto" tem
// stock; tipo "servico" tem retenção e duração estimada.
type CriarProdutoRequest struct {
	Codigo          string          `json:"codigo"`
	Nome            string          `json:"nome"`
	Descricao       string          `json:"descricao,omitempty"`
	Tipo            string          `json:"tipo"` // produto | servico
	CategoriaID     string          `json:"categoria_id,omitempty"`
	FornecedorID    string          `json:"fornecedor_id,omitempty"`
	PrecoVenda      decimal.Decimal `json:"preco_venda"`
	TaxaIVA         decimal.Decimal `json:"taxa_iva"`
	Retencao        decimal.Decimal `json:"retencao,omitempty"`
	EstoqueMinimo   decimal.Decimal `json:"estoque_minimo,omitempty"`
	DuracaoEstimada int             `json:"duracao_estimada,omitempty"` // minutos
}

// AtualizarProdutoRequest body para PUT /api/produtos/:id. Campos nil não
// são alterados; o stock nunca se altera aqui (só via movimentos).
type AtualizarProdutoRequest struct {
	Nome            *string          `json:"nome,omitempty"`
	Descricao       *string          `json:"descricao,omitempty"`
	CategoriaID     *string          `json:"categoria_id,omitempty"`
	FornecedorID    *string          `json:"fornecedor_id,omitempty"`
	PrecoVenda      *decimal.Decimal `json:"preco_venda,omitempty"`
	TaxaIVA         *decimal.Decimal `json:"taxa_iva,omitempty"`
	Retencao        *decimal.Decimal `json:"retencao,omitempty"`
	EstoqueMinimo   *decimal.Decimal `json:"estoque_minimo,omitempty"`
	DuracaoEstimada *int             `json:"duracao_estimada,omitempty"`
}

// ProdutoResponse produto nas respostas da API.
type ProdutoResponse struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo"`
	Nome            string          `json:"nome"`
	Descricao       string          `json:"descricao,omitempty"`
	Tipo            string          `json:"tipo"`
	CategoriaID     string          `json:"categoria_id,omitempty"`
	FornecedorID    string          `json:"fornecedor_id,omitempty"`
	PrecoVenda      decimal.Decimal `json:"preco_venda"`
	TaxaIVA         decimal.Decimal `json:"taxa_iva"`
	Retencao        decimal.Decimal `json:"retencao"`
	EstoqueAtual    decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo   decimal.Decimal `json:"estoque_minimo"`
	EstoqueBaixo    bool            `json:"estoque_baixo"`
	DuracaoEstimada int             `json:"duracao_estimada,omitempty"`
}
