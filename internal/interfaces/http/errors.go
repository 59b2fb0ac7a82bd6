package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
)

// MsgValidation mensaje común de los 400 por validación.
const MsgValidation = "Datos incompletos."

// errorMessages textos por recurso; los vacíos usan el valor por defecto.
type errorMessages struct {
	NotFound  string
	Forbidden string
	Conflict  string
	Internal  string
}

// respondError traduce un error de dominio a su respuesta HTTP. Los 500 se registran
// con la causa completa y responden solo con el mensaje genérico. Un WriteError siempre
// es 500, aunque su causa envuelva un error de dominio.
func respondError(c *fiber.Ctx, err error, msgs errorMessages) error {
	var (
		verr *domain.ValidationError
		werr *domain.WriteError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: MsgValidation, Errors: verr.Violations,
		})
	case errors.As(err, &werr):
		return internalError(c, err, msgs)
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Datos inválidos."})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "El email ya está registrado."})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "No autorizado."})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: orDefault(msgs.Forbidden, "Acceso denegado.")})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: orDefault(msgs.NotFound, "Recurso no encontrado.")})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: orDefault(msgs.Conflict, "El recurso está en uso.")})
	}
	return internalError(c, err, msgs)
}

func internalError(c *fiber.Ctx, err error, msgs errorMessages) error {
	requestLog(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: orDefault(msgs.Internal, "Error interno del servidor.")})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: message})
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
