package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/auth"
	"github.com/omunga/faturacao-api/internal/application/fiscal"
	"github.com/omunga/faturacao-api/internal/application/relatorios"
	"github.com/omunga/faturacao-api/internal/application/stock"
	"github.com/omunga/faturacao-api/internal/application/usecase"
	"github.com/omunga/faturacao-api/internal/application/vendas"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	EmpresaUC    *usecase.EmpresaUseCase
	FiscalSvc    *fiscal.Service
	PDFUC        *fiscal.PDFUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	ClienteUC    *usecase.ClienteUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	FornecedorUC *usecase.FornecedorUseCase
	StockUC      *stock.UseCase
	VendaUC      *vendas.UseCase
	DashboardUC  *relatorios.DashboardUseCase
	Exporter     RelatorioExporter
	JWTSecret    string
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registar", authHandler.Registar)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token; empresa_id vem dos claims)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil da empresa (tenant do token)
	empresa := protected.Group("/empresa")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresa.Get("/", empresaHandler.Get)
	empresa.Put("/", RequireRole("admin"), empresaHandler.Update)

	// Documentos fiscais
	docs := protected.Group("/documentos-fiscais")
	docHandler := NewDocumentoHandler(deps.FiscalSvc, deps.PDFUC)
	docs.Post("/emitir", docHandler.Emitir)
	docs.Get("/", docHandler.List)
	docs.Post("/processar-expirados", docHandler.ProcessarExpirados)
	docs.Post("/adiantamentos/:id/vincular", docHandler.VincularAdiantamento)
	docs.Get("/:id", docHandler.GetByID)
	docs.Get("/:id/pdf", docHandler.DownloadPDF)
	docs.Post("/:id/recibo", docHandler.GerarRecibo)
	docs.Post("/:id/nota-credito", docHandler.NotaCredito)
	docs.Post("/:id/nota-debito", docHandler.NotaDebito)
	docs.Post("/:id/cancelar", docHandler.Cancelar)

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Categorias
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Fornecedores
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Stock (movimentos manuais + histórico)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/movimentos", stockHandler.RegistarMovimento)
	stockGroup.Get("/movimentos", stockHandler.List)

	// Vendas
	vendasGroup := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendasGroup.Post("/", vendaHandler.Create)
	vendasGroup.Get("/", vendaHandler.List)
	vendasGroup.Get("/:id", vendaHandler.GetByID)
	vendasGroup.Post("/:id/faturar", vendaHandler.Faturar)
	vendasGroup.Post("/:id/cancelar", vendaHandler.Cancelar)

	// Dashboard e relatórios
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Exporter)
	dashboard.Get("/resumo", dashboardHandler.Resumo)
	dashboard.Get("/evolucao-mensal", dashboardHandler.EvolucaoMensal)
	dashboard.Get("/alertas", dashboardHandler.Alertas)
	dashboard.Get("/relatorio.xlsx", dashboardHandler.ExportarRelatorio)
}
