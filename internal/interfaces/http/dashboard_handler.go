package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/relatorios"
)

// RelatorioExporter exporta as linhas do relatório para XLSX.
type RelatorioExporter interface {
	Exportar(linhas []dto.LinhaRelatorio) ([]byte, error)
}

// DashboardHandler trata os rollups do dashboard e a exportação de
// relatórios (protegido).
type DashboardHandler struct {
	uc       *relatorios.DashboardUseCase
	exporter RelatorioExporter
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *relatorios.DashboardUseCase, exporter RelatorioExporter) *DashboardHandler {
	return &DashboardHandler{uc: uc, exporter: exporter}
}

// Resumo devolve faturado hoje/mês, recebido, pendente e contagens por
// tipo e estado.
// GET /api/dashboard/resumo
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo(c.Context(), GetEmpresaID(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// EvolucaoMensal devolve os 12 meses do ano pedido (por defeito o corrente).
// GET /api/dashboard/evolucao-mensal?ano=2026
func (h *DashboardHandler) EvolucaoMensal(c *fiber.Ctx) error {
	ano := c.QueryInt("ano", 0)
	out, err := h.uc.EvolucaoMensal(c.Context(), GetEmpresaID(c), ano)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// Alertas devolve stock baixo, FAs a expirar e FTs vencidas.
// GET /api/dashboard/alertas
func (h *DashboardHandler) Alertas(c *fiber.Ctx) error {
	out, err := h.uc.Alertas(c.Context(), GetEmpresaID(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// ExportarRelatorio exporta o relatório de faturação do mês (ou do ano
// inteiro, se mes for omitido) em XLSX.
// GET /api/dashboard/relatorio.xlsx?ano=2026&mes=3
func (h *DashboardHandler) ExportarRelatorio(c *fiber.Ctx) error {
	agora := time.Now()
	ano := c.QueryInt("ano", agora.Year())
	mes := c.QueryInt("mes", 0)

	var inicio, fim time.Time
	var nome string
	if mes >= 1 && mes <= 12 {
		inicio = time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
		fim = inicio.AddDate(0, 1, 0)
		nome = fmt.Sprintf("faturacao_%d-%02d.xlsx", ano, mes)
	} else {
		inicio = time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC)
		fim = inicio.AddDate(1, 0, 0)
		nome = fmt.Sprintf("faturacao_%d.xlsx", ano)
	}

	linhas, err := h.uc.RelatorioPeriodo(c.Context(), GetEmpresaID(c), inicio, fim)
	if err != nil {
		return Fail(c, err)
	}
	ficheiro, err := h.exporter.Exportar(linhas)
	if err != nil {
		return Fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(ficheiro)
}
