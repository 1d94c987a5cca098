package dto

import "github.com/shopspring/decimal"

// DashboardResumoResponse resposta de GET /api/dashboard/resumo.
// KPIs do dia e do mês em curso para a empresa autenticada.
type DashboardResumoResponse struct {
	// Faturado = FT + FR + FRt + ND − NC, excluindo cancelados
	FaturadoHoje decimal.Decimal `json:"faturado_hoje"`
	FaturadoMes  decimal.Decimal `json:"faturado_mes"`

	// Recebido = recibos (RC) + faturas-recibo (FR) do mês
	RecebidoMes decimal.Decimal `json:"recebido_mes"`

	// Por liquidar nas FT e FA abertos (qualquer período)
	PendenteTotal decimal.Decimal `json:"pendente_total"`

	DocumentosMes int            `json:"documentos_mes"`
	PorTipo       map[string]int `json:"por_tipo"`
	PorEstado     map[string]int `json:"por_estado"`

	MesLabel string `json:"mes_label"` // ex.: "Setembro 2026"
}

// MesEvolucao um mês da evolução anual.
type MesEvolucao struct {
	Mes          int             `json:"mes"` // 1..12
	Label        string          `json:"label"`
	Faturado     decimal.Decimal `json:"faturado"`
	NotasCredito decimal.Decimal `json:"notas_credito"`
	Liquido      decimal.Decimal `json:"liquido"`
	Documentos   int             `json:"documentos"`
}

// EvolucaoMensalResponse resposta de GET /api/dashboard/evolucao?ano=N.
type EvolucaoMensalResponse struct {
	Ano   int           `json:"ano"`
	Meses []MesEvolucao `json:"meses"` // sempre 12 entradas
}

// StockBaixoAlerta produto com stock no mínimo ou abaixo.
type StockBaixoAlerta struct {
	ProdutoID     string          `json:"produto_id"`
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
}

// DocumentoAlerta documento que exige atenção (FA a expirar, FT vencida).
type DocumentoAlerta struct {
	DocumentoID     string          `json:"documento_id"`
	NumeroDocumento string          `json:"numero_documento"`
	ClienteNome     string          `json:"cliente_nome,omitempty"`
	TotalLiquido    decimal.Decimal `json:"total_liquido"`
	DataVencimento  string          `json:"data_vencimento"`
}

// AlertasResponse resposta de GET /api/dashboard/alertas.
type AlertasResponse struct {
	StockBaixo            []StockBaixoAlerta `json:"stock_baixo"`
	AdiantamentosAExpirar []DocumentoAlerta  `json:"adiantamentos_a_expirar"`
	FaturasVencidas       []DocumentoAlerta  `json:"faturas_vencidas"`
}

// LinhaRelatorio uma linha do relatório de faturação exportável (XLSX).
type LinhaRelatorio struct {
	NumeroDocumento string
	TipoDocumento   string
	Estado          string
	ClienteNome     string
	DataEmissao     string
	BaseTributavel  decimal.Decimal
	TotalIVA        decimal.Decimal
	TotalRetencao   decimal.Decimal
	TotalLiquido    decimal.Decimal
}
