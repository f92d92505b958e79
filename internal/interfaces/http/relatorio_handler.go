package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/application/relatorio"
)

// RelatorioHandler trata as requisições HTTP de relatórios (protegido, admin).
type RelatorioHandler struct {
	vendasCliente *relatorio.VendasClienteUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(vendasCliente *relatorio.VendasClienteUseCase) *RelatorioHandler {
	return &RelatorioHandler{vendasCliente: vendasCliente}
}

// VendasPorCliente devolve o relatório de vendas de um cliente.
// GET /api/relatorios/vendas-cliente/:cliente_id
func (h *RelatorioHandler) VendasPorCliente(c *fiber.Ctx) error {
	clienteID := c.Params("cliente_id")
	if clienteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "cliente_id obrigatório"})
	}
	out, err := h.vendasCliente.VendasPorCliente(c.Context(), clienteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
