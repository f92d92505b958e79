package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/loja-app/loja-api/internal/application/dto"
	"github.com/loja-app/loja-api/internal/application/vendas"
)

// VendaHandler trata as requisições HTTP de vendas (protegido).
type VendaHandler struct {
	uc *vendas.UseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *vendas.UseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Registrar registra uma venda e baixa o estoque na mesma transação.
// POST /api/vendas
func (h *VendaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancelar cancela uma venda e estorna o estoque dos itens.
// POST /api/vendas/:id/cancelar
func (h *VendaHandler) Cancelar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	out, err := h.uc.Cancelar(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtém uma venda com seus itens.
// GET /api/vendas/:id
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista vendas, mais recentes primeiro.
// GET /api/vendas
func (h *VendaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Recibo devolve o recibo da venda em PDF.
// GET /api/vendas/:id/recibo
func (h *VendaHandler) Recibo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id obrigatório"})
	}
	pdfBytes, err := h.uc.Recibo(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
