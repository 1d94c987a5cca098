// Package excel exporta o relatório de faturação para XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
)

const folhaRelatorio = "Faturação"

var cabecalho = []string{
	"Documento", "Tipo", "Estado", "Cliente", "Data de Emissão",
	"Base Tributável", "IVA", "Retenção", "Total Líquido",
}

// RelatorioExporter gera ficheiros XLSX a partir das linhas do relatório.
type RelatorioExporter struct{}

// NewRelatorioExporter constrói o exportador.
func NewRelatorioExporter() *RelatorioExporter { return &RelatorioExporter{} }

// Exportar escreve as linhas numa folha e devolve os bytes do ficheiro.
func (e *RelatorioExporter) Exportar(linhas []dto.LinhaRelatorio) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(folhaRelatorio)
	if err != nil {
		return nil, fmt.Errorf("xlsx: criar folha: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	for i, titulo := range cabecalho {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(folhaRelatorio, cell, titulo)
		_ = f.SetCellStyle(folhaRelatorio, cell, cell, boldStyle)
	}

	for i, l := range linhas {
		valores := []any{
			l.NumeroDocumento, l.TipoDocumento, l.Estado, l.ClienteNome, l.DataEmissao,
			l.BaseTributavel.InexactFloat64(),
			l.TotalIVA.InexactFloat64(),
			l.TotalRetencao.InexactFloat64(),
			l.TotalLiquido.InexactFloat64(),
		}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(folhaRelatorio, cell, v)
		}
	}

	_ = f.SetColWidth(folhaRelatorio, "A", "A", 18)
	_ = f.SetColWidth(folhaRelatorio, "D", "E", 22)
	_ = f.SetColWidth(folhaRelatorio, "F", "I", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escrever ficheiro: %w", err)
	}
	return buf.Bytes(), nil
}
