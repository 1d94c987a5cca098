// Package pdf implementa a representação gráfica A4 dos documentos fiscais
// (regime de faturação AGT, Angola).
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIF       │  Tipo + Número + Data        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMITENTE: Endereço / Tel / Email                           │
//	│  CLIENTE: Nome + NIF                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | P.Unit | IVA | Desc | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Base tributável / IVA / Retenção / TOTAL LÍQUIDO   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: resumo do hash + menções legais                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	domfiscal "github.com/omunga/faturacao-api/internal/domain/fiscal"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Nomes longos dos tipos de documento para impressão.
var tipoLabels = map[entity.TipoDocumento]string{
	entity.TipoFT:  "FATURA",
	entity.TipoFR:  "FATURA-RECIBO",
	entity.TipoFP:  "FATURA PROFORMA",
	entity.TipoFA:  "FATURA DE ADIANTAMENTO",
	entity.TipoNC:  "NOTA DE CRÉDITO",
	entity.TipoND:  "NOTA DE DÉBITO",
	entity.TipoRC:  "RECIBO",
	entity.TipoFRt: "FATURA DE RETIFICAÇÃO",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa fiscal.DocumentoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GerarDocumentoPDF gera o PDF e devolve os seus bytes.
func (g *MarotoPDFGenerator) GerarDocumentoPDF(
	_ context.Context,
	doc *entity.DocumentoFiscal,
	empresa *entity.Empresa,
	itens []*entity.ItemDocumento,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.NumeroDocumento, true).
		WithAuthor(empresa.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emitenteRow(empresa))
	m.AddRows(clienteRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range rodapeRows(doc) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secções ───────────────────────────────────────────────────────────────────

// headerRow: empresa + NIF (esq) e tipo + número + data (dir).
func headerRow(doc *entity.DocumentoFiscal, empresa *entity.Empresa) core.Row {
	tipoLabel := tipoLabels[doc.TipoDocumento]
	if tipoLabel == "" {
		tipoLabel = string(doc.TipoDocumento)
	}
	data := doc.DataEmissao.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIF: "+empresa.NIF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(tipoLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.NumeroDocumento, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emitenteRow: dados do emitente (empresa).
func emitenteRow(empresa *entity.Empresa) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DADOS DO EMITENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Endereço: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(empresa.Endereco, "—"),
				nonEmpty(empresa.Telefone, "—"),
				nonEmpty(empresa.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clienteRow: dados do adquirente. Sem cliente registado imprime-se o nome
// livre do documento ou "Consumidor Final".
func clienteRow(doc *entity.DocumentoFiscal) core.Row {
	nome := doc.ClienteNome
	if nome == "" {
		nome = "Consumidor Final"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ADQUIRENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de linhas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição", 4, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Desc%", 1, align.Center),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: uma fila por linha do documento.
func tableItemRows(itens []*entity.ItemDocumento) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantidade.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.Descricao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatKz(it.PrecoUnitario.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxaIVA.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				it.Desconto.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatKz(it.TotalLinha.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: bloco de totais alinhado à direita.
func totaisRow(doc *entity.DocumentoFiscal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Base tributável:"),
			label("Total IVA:"),
			label("Retenção na fonte:"),
			grandLabel("TOTAL LÍQUIDO:"),
		),
		col.New(4).Add(
			value(formatKz(doc.BaseTributavel.StringFixed(2))),
			value(formatKz(doc.TotalIVA.StringFixed(2))),
			value(formatKz(doc.TotalRetencao.StringFixed(2))),
			grandValue(formatKz(doc.TotalLiquido.StringFixed(2))),
		),
		col.New(1),
	)
}

// rodapeRows: resumo do hash + menções legais.
func rodapeRows(doc *entity.DocumentoFiscal) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("INFORMAÇÃO FISCAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if doc.HashFiscal != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s — processado por programa validado", domfiscal.ResumoHash(doc.HashFiscal)), props.Text{
				Size: 7, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
	}

	if doc.Estado == entity.EstadoCancelado {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("DOCUMENTO ANULADO — "+nonEmpty(doc.MotivoCancelamento, "sem motivo registado"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento emitido ao abrigo do Regime Jurídico das Faturas e Documentos "+
				"Equivalentes (Decreto Presidencial n.º 292/18). Os bens/serviços foram "+
				"colocados à disposição do adquirente na data do documento.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatKz formata um valor em kwanzas com separador de milhares.
// Ex.: "25000.00" → "25.000,00 Kz"
func formatKz(s string) string {
	inteiro, decimais := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			inteiro, decimais = s[:i], s[i+1:]
			break
		}
	}
	n := len(inteiro)
	buf := make([]byte, 0, n+n/3+8)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 && inteiro[i-1] != '-' {
			buf = append(buf, '.')
		}
		buf = append(buf, inteiro[i])
	}
	out := string(buf)
	if decimais != "" {
		out += "," + decimais
	}
	return out + " Kz"
}
