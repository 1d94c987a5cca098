package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/usecase"
)

// FornecedorHandler trata o CRUD de fornecedores (protegido).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create cria um fornecedor.
// POST /api/fornecedores
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// Update atualiza um fornecedor.
// PUT /api/fornecedores/:id
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// List lista fornecedores da empresa.
// GET /api/fornecedores
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
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
		"fornecedores": list,
		"page":         dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Delete marca um fornecedor como eliminado.
// DELETE /api/fornecedores/:id
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return Fail(c, err)
	}
	return OK(c, nil)
}
