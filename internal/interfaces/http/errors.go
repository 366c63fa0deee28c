package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/pkg/logger"
)

// writeError traduce un error de dominio a la respuesta HTTP. Los 500 se registran en el log.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	var dbErr *domain.DatabaseError

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "datos inválidos", Details: verr.Fields})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ID_NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrNotModified):
		return c.SendStatus(fiber.StatusNotModified)
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.As(err, &dbErr):
		log.Error().Err(err).Str("op", dbErr.Op).Str("path", c.Path()).Msg("error de base de datos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATABASE_ERROR", Message: "error al acceder a la base de datos"})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UNKNOWN_ERROR", Message: "error interno"})
}

// invalidBody respuesta para JSON mal formado.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
