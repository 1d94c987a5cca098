package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/omunga/faturacao-api/internal/domain"
)

// Envelope formato uniforme das respostas da API.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK responde 200 com data.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Created responde 201 com data.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// BadRequest responde 400 com mensagem.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Envelope{Success: false, Message: message})
}

// Fail mapeia um erro de domínio para o status HTTP e responde com o
// envelope. Erros inesperados são registados e saem como 500 genérico.
func Fail(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(Envelope{
			Success: false, Message: "validação falhou", Errors: ve.Campos,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respondErr(c, fiber.StatusNotFound, err)
	case errors.Is(err, domain.ErrForbidden):
		return respondErr(c, fiber.StatusForbidden, err)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrCredenciaisInvalidas):
		return respondErr(c, fiber.StatusUnauthorized, err)
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailJaRegistado), errors.Is(err, domain.ErrConflict):
		return respondErr(c, fiber.StatusConflict, err)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNIFInvalido):
		return respondErr(c, fiber.StatusBadRequest, err)
	case errors.Is(err, domain.ErrStockInsuficiente),
		errors.Is(err, domain.ErrDocumentoFechado),
		errors.Is(err, domain.ErrDocumentoCancelado),
		errors.Is(err, domain.ErrValorExcedePendente),
		errors.Is(err, domain.ErrTipoIncompativel),
		errors.Is(err, domain.ErrEstadoTerminal):
		return respondErr(c, fiber.StatusUnprocessableEntity, err)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Success: false, Message: "erro interno do servidor",
	})
}

func respondErr(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: err.Error()})
}
