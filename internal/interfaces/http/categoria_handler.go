package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/usecase"
)

// CategoriaHandler trata o CRUD de categorias (protegido).
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Create cria uma categoria.
// POST /api/categorias
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// Update atualiza uma categoria.
// PUT /api/categorias/:id
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// List lista categorias da empresa.
// GET /api/categorias
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
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
		"categorias": list,
		"page":       dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Delete marca uma categoria como eliminada.
// DELETE /api/categorias/:id
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return Fail(c, err)
	}
	return OK(c, nil)
}
