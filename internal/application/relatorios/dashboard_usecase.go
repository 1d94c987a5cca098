// Package relatorios contém os casos de uso do dashboard e dos relatórios
// de faturação. Os agregados são recalculados a cada leitura a partir do
// RelatorioRepository (consultas read-only); não há cache nem materialização.
package relatorios

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// PendenteCalculator calcula o saldo por liquidar de um documento.
// Implementado pelo motor fiscal.
type PendenteCalculator interface {
	ValorPendente(doc *entity.DocumentoFiscal) (decimal.Decimal, error)
}

// DashboardUseCase gera o resumo financeiro do dia e do mês em curso.
type DashboardUseCase struct {
	relatorioRepo   repository.RelatorioRepository
	produtoRepo     repository.ProdutoRepository
	docRepo         repository.DocumentoFiscalRepository
	pendentes       PendenteCalculator
	avisoExpiraDias int
}

// NewDashboardUseCase constrói o caso de uso. avisoExpiraDias é a
// antecedência do aviso de expiração de FA; valores não positivos usam 7.
func NewDashboardUseCase(
	relatorioRepo repository.RelatorioRepository,
	produtoRepo repository.ProdutoRepository,
	docRepo repository.DocumentoFiscalRepository,
	pendentes PendenteCalculator,
	avisoExpiraDias int,
) *DashboardUseCase {
	if avisoExpiraDias <= 0 {
		avisoExpiraDias = 7
	}
	return &DashboardUseCase{
		relatorioRepo:   relatorioRepo,
		produtoRepo:     produtoRepo,
		docRepo:         docRepo,
		pendentes:       pendentes,
		avisoExpiraDias: avisoExpiraDias,
	}
}

// Resumo constrói o DashboardResumoResponse da empresa.
//
// Duas consultas em paralelo:
//  1. documentos de hoje    → faturado_hoje
//  2. documentos do mês     → faturado_mes, recebido_mes, contagens
//
// O pendente total é somado a seguir sobre os documentos abertos do mês.
func (uc *DashboardUseCase) Resumo(ctx context.Context, empresaID string) (*dto.DashboardResumoResponse, error) {
	now := time.Now()

	// Hoje: 00:00:00.000 – 23:59:59.999
	inicioHoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fimHoje := inicioHoje.Add(24*time.Hour - time.Nanosecond)

	// Mês em curso: dia 1 às 00:00 – hoje às 23:59:59
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type docsResult struct {
		docs []*entity.DocumentoFiscal
		err  error
	}
	hojeCh := make(chan docsResult, 1)
	mesCh := make(chan docsResult, 1)

	go func() {
		docs, err := uc.relatorioRepo.ListDocumentosPeriodo(ctx, empresaID, inicioHoje, fimHoje)
		hojeCh <- docsResult{docs, err}
	}()
	go func() {
		docs, err := uc.relatorioRepo.ListDocumentosPeriodo(ctx, empresaID, inicioMes, fimHoje)
		mesCh <- docsResult{docs, err}
	}()

	hoje := <-hojeCh
	mes := <-mesCh
	if hoje.err != nil {
		return nil, fmt.Errorf("dashboard: documentos de hoje: %w", hoje.err)
	}
	if mes.err != nil {
		return nil, fmt.Errorf("dashboard: documentos do mês: %w", mes.err)
	}

	totaisHoje := AgregarPeriodo(hoje.docs)
	totaisMes := AgregarPeriodo(mes.docs)

	pendente := decimal.Zero
	for _, doc := range mes.docs {
		if !doc.TipoDocumento.AdmiteRecibo() || !doc.Estado.AdmitePagamento() {
			continue
		}
		p, err := uc.pendentes.ValorPendente(doc)
		if err != nil {
			return nil, fmt.Errorf("dashboard: pendente de %s: %w", doc.NumeroDocumento, err)
		}
		pendente = pendente.Add(p)
	}

	return &dto.DashboardResumoResponse{
		FaturadoHoje:  totaisHoje.Faturado,
		FaturadoMes:   totaisMes.Faturado,
		RecebidoMes:   totaisMes.Recebido,
		PendenteTotal: pendente.Round(2),
		DocumentosMes: totaisMes.Documentos,
		PorTipo:       totaisMes.PorTipo,
		PorEstado:     totaisMes.PorEstado,
		MesLabel:      mesLabel(now),
	}, nil
}

// EvolucaoMensal devolve os 12 meses do ano civil indicado.
func (uc *DashboardUseCase) EvolucaoMensal(ctx context.Context, empresaID string, ano int) (*dto.EvolucaoMensalResponse, error) {
	if ano == 0 {
		ano = time.Now().Year()
	}
	docs, err := uc.relatorioRepo.ListDocumentosAno(ctx, empresaID, ano)
	if err != nil {
		return nil, fmt.Errorf("evolução mensal: %w", err)
	}
	return &dto.EvolucaoMensalResponse{Ano: ano, Meses: AgregarPorMes(docs)}, nil
}

// Alertas devolve os três avisos operacionais do dashboard: stock baixo,
// adiantamentos a expirar nos próximos dias e faturas vencidas.
func (uc *DashboardUseCase) Alertas(ctx context.Context, empresaID string) (*dto.AlertasResponse, error) {
	now := time.Now()
	resp := &dto.AlertasResponse{
		StockBaixo:            []dto.StockBaixoAlerta{},
		AdiantamentosAExpirar: []dto.DocumentoAlerta{},
		FaturasVencidas:       []dto.DocumentoAlerta{},
	}

	produtos, err := uc.produtoRepo.ListStockBaixo(empresaID)
	if err != nil {
		return nil, fmt.Errorf("alertas: stock baixo: %w", err)
	}
	for _, p := range produtos {
		resp.StockBaixo = append(resp.StockBaixo, dto.StockBaixoAlerta{
			ProdutoID:     p.ID,
			Codigo:        p.Codigo,
			Nome:          p.Nome,
			EstoqueAtual:  p.EstoqueAtual,
			EstoqueMinimo: p.EstoqueMinimo,
		})
	}

	// FA com vencimento passado ou dentro da janela de aviso
	fas, err := uc.docRepo.ListFAExpiraveis(empresaID, now.AddDate(0, 0, uc.avisoExpiraDias))
	if err != nil {
		return nil, fmt.Errorf("alertas: adiantamentos: %w", err)
	}
	for _, doc := range fas {
		resp.AdiantamentosAExpirar = append(resp.AdiantamentosAExpirar, toDocumentoAlerta(doc))
	}

	vencidas, err := uc.relatorioRepo.ListFTVencidas(ctx, empresaID, now)
	if err != nil {
		return nil, fmt.Errorf("alertas: faturas vencidas: %w", err)
	}
	for _, doc := range vencidas {
		resp.FaturasVencidas = append(resp.FaturasVencidas, toDocumentoAlerta(doc))
	}
	return resp, nil
}

// RelatorioPeriodo devolve as linhas do relatório de faturação do intervalo,
// prontas a exportar (XLSX ou tabela).
func (uc *DashboardUseCase) RelatorioPeriodo(ctx context.Context, empresaID string, inicio, fim time.Time) ([]dto.LinhaRelatorio, error) {
	docs, err := uc.relatorioRepo.ListDocumentosPeriodo(ctx, empresaID, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("relatório do período: %w", err)
	}
	linhas := make([]dto.LinhaRelatorio, 0, len(docs))
	for _, doc := range docs {
		linhas = append(linhas, dto.LinhaRelatorio{
			NumeroDocumento: doc.NumeroDocumento,
			TipoDocumento:   string(doc.TipoDocumento),
			Estado:          string(doc.Estado),
			ClienteNome:     doc.ClienteNome,
			DataEmissao:     doc.DataEmissao.Format("2006-01-02"),
			BaseTributavel:  doc.BaseTributavel,
			TotalIVA:        doc.TotalIVA,
			TotalRetencao:   doc.TotalRetencao,
			TotalLiquido:    doc.TotalLiquido,
		})
	}
	return linhas, nil
}

func toDocumentoAlerta(doc *entity.DocumentoFiscal) dto.DocumentoAlerta {
	alerta := dto.DocumentoAlerta{
		DocumentoID:     doc.ID,
		NumeroDocumento: doc.NumeroDocumento,
		ClienteNome:     doc.ClienteNome,
		TotalLiquido:    doc.TotalLiquido,
	}
	if doc.DataVencimento != nil {
		alerta.DataVencimento = doc.DataVencimento.Format("2006-01-02")
	}
	return alerta
}

// mesLabel devolve a etiqueta legível do mês, ex.: "Setembro 2026".
func mesLabel(t time.Time) string {
	meses := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
