package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/usecase"
)

// ClienteHandler trata o CRUD de clientes (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create cria um cliente. NIF validado para tipo empresa.
// POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// GetByID obtém um cliente por ID.
// GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// Update atualiza um cliente.
// PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// List lista clientes da empresa.
// GET /api/clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return BadRequest(c, "parâmetros de consulta inválidos")
	}
	page.DefaultPage()
	list, total, err := h.uc.List(GetEmpresaID(c), page)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.Map{
		"clientes": list,
		"page":     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Delete marca um cliente como eliminado.
// DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return Fail(c, err)
	}
	return OK(c, nil)
}
