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

	"github.com/loja-app/loja-api/internal/application/auth"
	"github.com/loja-app/loja-api/internal/application/estoque"
	"github.com/loja-app/loja-api/internal/application/relatorio"
	"github.com/loja-app/loja-api/internal/application/usecase"
	"github.com/loja-app/loja-api/internal/application/vendas"
	infrapdf "github.com/loja-app/loja-api/internal/infrastructure/pdf"
	"github.com/loja-app/loja-api/internal/infrastructure/postgres"
	httpRouter "github.com/loja-app/loja-api/internal/interfaces/http"
	"github.com/loja-app/loja-api/pkg/config"
	"github.com/loja-app/loja-api/pkg/logger"
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
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	lojaRepo := postgres.NewLojaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	movRepo := postgres.NewMovimentacaoEstoqueRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	estoqueUC := estoque.NewUseCase(txRunner, produtoRepo, estoqueRepo, movRepo)
	reciboGenerator := infrapdf.NewMarotoReciboGenerator()
	vendasUC := vendas.NewUseCase(
		txRunner, estoqueUC,
		lojaRepo, clienteRepo, produtoRepo, vendaRepo,
		reciboGenerator,
	)

	lojaUC := usecase.NewLojaUseCase(lojaRepo, produtoRepo, vendaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, produtoRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo, produtoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo, vendaRepo)
	produtoUC := usecase.NewProdutoUseCase(
		txRunner, produtoRepo, estoqueRepo, movRepo,
		lojaRepo, categoriaRepo, fornecedorRepo, vendaRepo,
	)
	relatorioUC := relatorio.NewVendasClienteUseCase(clienteRepo, vendaRepo)

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
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
		Title:    "Loja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LojaUC:       lojaUC,
		CategoriaUC:  categoriaUC,
		FornecedorUC: fornecedorUC,
		ClienteUC:    clienteUC,
		ProdutoUC:    produtoUC,
		EstoqueUC:    estoqueUC,
		VendasUC:     vendasUC,
		RelatorioUC:  relatorioUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
