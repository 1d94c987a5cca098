package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/auth"
	"github.com/omunga/faturacao-api/internal/application/dto"
)

// AuthHandler trata registo e login (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Registar cria a empresa (tenant) e o seu utilizador admin.
// POST /api/auth/registar
func (h *AuthHandler) Registar(c *fiber.Ctx) error {
	var in dto.RegistarEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.RegistarEmpresa(in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// Login autentica por email/password e devolve o token JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}
