package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-app/loja-api/internal/application/auth"
	"github.com/loja-app/loja-api/internal/application/estoque"
	"github.com/loja-app/loja-api/internal/application/relatorio"
	"github.com/loja-app/loja-api/internal/application/usecase"
	"github.com/loja-app/loja-api/internal/application/vendas"
	"github.com/loja-app/loja-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	LojaUC       *usecase.LojaUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	FornecedorUC *usecase.FornecedorUseCase
	ClienteUC    *usecase.ClienteUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	EstoqueUC    *estoque.UseCase
	VendasUC     *vendas.UseCase
	RelatorioUC  *relatorio.VendasClienteUseCase
	JWTSecret    string
}

// Router registra as rotas da API. Leituras exigem token; escritas e
// relatórios exigem papel admin (espelha o acesso staff do painel).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.PapelAdmin)

	// Lojas
	lojas := protected.Group("/lojas")
	lojaHandler := NewLojaHandler(deps.LojaUC)
	lojas.Get("/", lojaHandler.List)
	lojas.Get("/:id", lojaHandler.GetByID)
	lojas.Post("/", admin, lojaHandler.Create)
	lojas.Put("/:id", admin, lojaHandler.Update)
	lojas.Delete("/:id", admin, lojaHandler.Delete)

	// Categorias
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", admin, categoriaHandler.Create)
	categorias.Put("/:id", admin, categoriaHandler.Update)
	categorias.Delete("/:id", admin, categoriaHandler.Delete)

	// Fornecedores
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Post("/", admin, fornecedorHandler.Create)
	fornecedores.Put("/:id", admin, fornecedorHandler.Update)
	fornecedores.Delete("/:id", admin, fornecedorHandler.Delete)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/", admin, clienteHandler.Create)
	clientes.Put("/:id", admin, clienteHandler.Update)
	clientes.Delete("/:id", admin, clienteHandler.Delete)

	// Produtos + estoque
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Post("/", admin, produtoHandler.Create)
	produtos.Put("/:id", admin, produtoHandler.Update)
	produtos.Delete("/:id", admin, produtoHandler.Delete)
	produtos.Get("/:id/estoque", estoqueHandler.Saldo)
	produtos.Get("/:id/estoque/movimentacoes", estoqueHandler.Movimentacoes)
	produtos.Post("/:id/estoque/ajustes", admin, estoqueHandler.Ajustar)

	// Vendas
	vendasGroup := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendasUC)
	vendasGroup.Get("/", vendaHandler.List)
	vendasGroup.Get("/:id", vendaHandler.GetByID)
	vendasGroup.Get("/:id/recibo", vendaHandler.Recibo)
	vendasGroup.Post("/", admin, vendaHandler.Registrar)
	vendasGroup.Post("/:id/cancelar", admin, vendaHandler.Cancelar)

	// Relatórios
	relatorios := protected.Group("/relatorios", admin)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/vendas-cliente/:cliente_id", relatorioHandler.VendasPorCliente)
}
