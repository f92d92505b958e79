package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/application/estoque"
)

// EstoqueHandler trata as requisições HTTP de estoque (protegido).
type EstoqueHandler struct {
	uc *estoque.UseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.UseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Ajustar aplica um ajuste manual de estoque (delta com sinal).
// POST /api/produtos/:id/estoque/ajustes
func (h *EstoqueHandler) Ajustar(c *fiber.Ctx) error {
	produtoID := c.Params("id")
	if produtoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	var in dto.AjusteEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Ajustar(c.Context(), produtoID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Saldo devolve o saldo atual do produto.
// GET /api/produtos/:id/estoque
func (h *EstoqueHandler) Saldo(c *fiber.Ctx) error {
	produtoID := c.Params("id")
	if produtoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	out, err := h.uc.SaldoAtual(c.Context(), produtoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movimentacoes lista o histórico de movimentações do produto.
// GET /api/produtos/:id/estoque/movimentacoes
func (h *EstoqueHandler) Movimentacoes(c *fiber.Ctx) error {
	produtoID := c.Params("id")
	if produtoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	out, err := h.uc.Movimentacoes(c.Context(), produtoID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
