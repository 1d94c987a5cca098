package dto

import "github.com/shopspring/decimal"

// ItemDocumentoRequest linha de um documento a emitir. ProdutoID é opcional
// para linhas livres (descrição obrigatória nesse caso).
type ItemDocumentoRequest struct {
	ProdutoID     string          `json:"produto_id,omitempty"`
	Descricao     string          `json:"descricao,omitempty"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	TaxaIVA       decimal.Decimal `json:"taxa_iva"`
	Desconto      decimal.Decimal `json:"desconto,omitempty"`
}

// DadosPagamentoRequest dados de pagamento na emissão (FR/FA) ou num recibo.
type DadosPagamentoRequest struct {
	Valor           decimal.Decimal `json:"valor"`
	MetodoPagamento string          `json:"metodo_pagamento"`
	DataPagamento   string          `json:"data_pagamento,omitempty"` // 2006-01-02
	Referencia      string          `json:"referencia,omitempty"`
}

// EmitirDocumentoRequest body para POST /api/documentos-fiscais/emitir.
// ClienteID ou ClienteNome (consumidor final sem registo) — FR exige um deles.
type EmitirDocumentoRequest struct {
	TipoDocumento  string                 `json:"tipo_documento"`
	Serie          string                 `json:"serie,omitempty"` // por defeito a série do ano
	ClienteID      string                 `json:"cliente_id,omitempty"`
	ClienteNome    string                 `json:"cliente_nome,omitempty"`
	VendaID        string                 `json:"venda_id,omitempty"`
	DataVencimento string                 `json:"data_vencimento,omitempty"` // 2006-01-02
	Motivo         string                 `json:"motivo,omitempty"`
	Itens          []ItemDocumentoRequest `json:"itens"`
	DadosPagamento *DadosPagamentoRequest `json:"dados_pagamento,omitempty"`
}

// GerarReciboRequest body para POST /api/documentos-fiscais/:id/recibo.
type GerarReciboRequest struct {
	Valor           decimal.Decimal `json:"valor"`
	MetodoPagamento string          `json:"metodo_pagamento"`
	DataPagamento   string          `json:"data_pagamento,omitempty"`
	Referencia      string          `json:"referencia,omitempty"`
}

// NotaRequest body para POST /api/documentos-fiscais/:id/nota-credito|nota-debito.
type NotaRequest struct {
	Itens  []ItemDocumentoRequest `json:"itens"`
	Motivo string                 `json:"motivo"`
}

// VincularAdiantamentoRequest body para POST /api/documentos-fiscais/adiantamentos/:id/vincular.
type VincularAdiantamentoRequest struct {
	FaturaID string          `json:"fatura_id"`
	Valor    decimal.Decimal `json:"valor"`
}

// CancelarRequest body para POST /api/documentos-fiscais/:id/cancelar.
type CancelarRequest struct {
	Motivo string `json:"motivo"`
}

// ListarDocumentosRequest filtros de GET /api/documentos-fiscais.
type ListarDocumentosRequest struct {
	Tipo       string `query:"tipo"`
	Estado     string `query:"estado"`
	ClienteID  string `query:"cliente_id"`
	DataInicio string `query:"data_inicio"` // 2006-01-02
	DataFim    string `query:"data_fim"`
	PageRequest
}

// ItemDocumentoResponse linha nas respostas.
type ItemDocumentoResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id,omitempty"`
	Descricao     string          `json:"descricao"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	TaxaIVA       decimal.Decimal `json:"taxa_iva"`
	Desconto      decimal.Decimal `json:"desconto"`
	ValorIVA      decimal.Decimal `json:"valor_iva"`
	ValorRetencao decimal.Decimal `json:"valor_retencao"`
	TotalLinha    decimal.Decimal `json:"total_linha"`
}

// DocumentoResponse documento fiscal nas respostas.
type DocumentoResponse struct {
	ID              string                  `json:"id"`
	NumeroDocumento string                  `json:"numero_documento"`
	Serie           string                  `json:"serie"`
	Numero          int64                   `json:"numero"`
	TipoDocumento   string                  `json:"tipo_documento"`
	Estado          string                  `json:"estado"`
	ClienteID       string                  `json:"cliente_id,omitempty"`
	ClienteNome     string                  `json:"cliente_nome,omitempty"`
	VendaID         string                  `json:"venda_id,omitempty"`
	FaturaID        string                  `json:"fatura_id,omitempty"`
	BaseTributavel  decimal.Decimal         `json:"base_tributavel"`
	TotalIVA        decimal.Decimal         `json:"total_iva"`
	TotalRetencao   decimal.Decimal         `json:"total_retencao"`
	TotalLiquido    decimal.Decimal         `json:"total_liquido"`
	ValorPendente   *decimal.Decimal        `json:"valor_pendente,omitempty"`
	Motivo          string                  `json:"motivo,omitempty"`
	MotivoCancelamento string               `json:"motivo_cancelamento,omitempty"`
	HashFiscal      string                  `json:"hash_fiscal,omitempty"`
	DataEmissao     string                  `json:"data_emissao"`
	DataVencimento  string                  `json:"data_vencimento,omitempty"`
	Itens           []ItemDocumentoResponse `json:"itens,omitempty"`
}

// DocumentoListResponse listagem paginada.
type DocumentoListResponse struct {
	Documentos []DocumentoResponse `json:"documentos"`
	Page       PageResponse        `json:"page"`
}
