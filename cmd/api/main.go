package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/omunga/faturacao-api/internal/application/auth"
	"github.com/omunga/faturacao-api/internal/application/fiscal"
	"github.com/omunga/faturacao-api/internal/application/relatorios"
	"github.com/omunga/faturacao-api/internal/application/stock"
	"github.com/omunga/faturacao-api/internal/application/usecase"
	"github.com/omunga/faturacao-api/internal/application/vendas"
	infraexcel "github.com/omunga/faturacao-api/internal/infrastructure/excel"
	infrapdf "github.com/omunga/faturacao-api/internal/infrastructure/pdf"
	"github.com/omunga/faturacao-api/internal/infrastructure/postgres"
	httpRouter "github.com/omunga/faturacao-api/internal/interfaces/http"
	"github.com/omunga/faturacao-api/pkg/config"
	"github.com/omunga/faturacao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão a PostgreSQL")
	}
	defer pool.Close()

	// Repositórios sobre o pool (leituras fora de transação).
	empresaRepo := postgres.NewEmpresaRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	docRepo := postgres.NewDocumentoFiscalRepository(pool)
	adiantRepo := postgres.NewAdiantamentoRepository(pool)
	movRepo := postgres.NewMovimentoStockRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)

	// Motor fiscal: escritas sempre dentro do TxRunner.
	txRunner := postgres.NewTxRunner(pool)
	fiscalSvc := fiscal.NewService(txRunner, docRepo, clienteRepo, produtoRepo, adiantRepo, vendaRepo)

	stockTxRunner := postgres.NewStockTxRunner(pool)
	stockUC := stock.NewUseCase(stockTxRunner, movRepo, produtoRepo)

	vendaUC := vendas.NewUseCase(vendaRepo, produtoRepo, clienteRepo, fiscalSvc)

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)

	dashboardUC := relatorios.NewDashboardUseCase(relatorioRepo, produtoRepo, docRepo, fiscalSvc, cfg.Fiscal.AvisoExpiraDias)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := fiscal.NewPDFUseCase(docRepo, empresaRepo, pdfGenerator)

	exporter := infraexcel.NewRelatorioExporter()

	authUC := auth.NewUseCase(userRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Faturação API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmpresaUC:    empresaUC,
		FiscalSvc:    fiscalSvc,
		PDFUC:        pdfUC,
		ProdutoUC:    produtoUC,
		ClienteUC:    clienteUC,
		CategoriaUC:  categoriaUC,
		FornecedorUC: fornecedorUC,
		StockUC:      stockUC,
		VendaUC:      vendaUC,
		DashboardUC:  dashboardUC,
		Exporter:     exporter,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação parada")
}
