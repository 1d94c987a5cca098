package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/usecase"
)

// ProdutoHandler trata o CRUD de produtos e serviços (protegido).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create cria um produto ou serviço.
// POST /api/produtos
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Create(GetEmpresaID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// GetByID obtém um produto por ID.
// GET /api/produtos/:id
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// Update atualiza um produto (tipo e código são imutáveis; stock nunca passa por aqui).
// PUT /api/produtos/:id
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// List lista produtos da empresa.
// GET /api/produtos
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
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
		"produtos": list,
		"page":     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Delete marca um produto como eliminado.
// DELETE /api/produtos/:id
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return Fail(c, err)
	}
	return OK(c, nil)
}
