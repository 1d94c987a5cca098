package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/vendas"
)

// VendaHandler trata vendas e a sua faturação (protegido).
type VendaHandler struct {
	uc *vendas.UseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *vendas.UseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Create cria uma venda pendente.
// POST /api/vendas
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.CriarVenda(c.Context(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// GetByID obtém uma venda com itens.
// GET /api/vendas/:id
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetVenda(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// List lista vendas da empresa.
// GET /api/vendas
func (h *VendaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return BadRequest(c, "parâmetros de consulta inválidos")
	}
	page.DefaultPage()
	list, total, err := h.uc.ListVendas(c.Context(), GetEmpresaID(c), page)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.Map{
		"vendas": list,
		"page":   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Faturar emite o documento fiscal (FT ou FR) de uma venda pendente.
// POST /api/vendas/:id/faturar
func (h *VendaHandler) Faturar(c *fiber.Ctx) error {
	var in dto.FaturarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Faturar(c.Context(), GetEmpresaID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// Cancelar cancela uma venda ainda pendente.
// POST /api/vendas/:id/cancelar
func (h *VendaHandler) Cancelar(c *fiber.Ctx) error {
	if err := h.uc.CancelarVenda(c.Context(), GetEmpresaID(c), c.Params("id")); err != nil {
		return Fail(c, err)
	}
	return OK(c, nil)
}
