package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/usecase"
)

// EmpresaHandler perfil da empresa autenticada (protegido).
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler constrói o handler.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Get devolve o perfil da empresa do token.
// GET /api/empresa
func (h *EmpresaHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetEmpresaID(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// Update atualiza o perfil da empresa (apenas admin).
// PUT /api/empresa
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	var in dto.AtualizarEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Update(GetEmpresaID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}
