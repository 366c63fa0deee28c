package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/pkg/logger"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	register *movement.RegisterMovementUseCase
	update   *movement.UpdateMovementUseCase
	remove   *movement.DeleteMovementUseCase
	query    *movement.QueryUseCase
	log      *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	register *movement.RegisterMovementUseCase,
	update *movement.UpdateMovementUseCase,
	remove *movement.DeleteMovementUseCase,
	query *movement.QueryUseCase,
	log *logger.Logger,
) *MovementHandler {
	return &MovementHandler{register: register, update: update, remove: remove, query: query, log: log}
}

// Create POST /api/v1/movements. 201 {id}.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.register.RegisterMovement(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("movement_id", id).Str("item_id", in.ItemID).Int("quantity", in.Quantity).Str("user_id", GetUserID(c)).Msg("movimiento registrado")
	return c.Status(fiber.StatusCreated).JSON(dto.MovementIDResponse{ID: id})
}

// Update PUT /api/v1/movements. 200 {id}; 304 si no hay cambios.
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.update.UpdateMovement(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("movement_id", id).Str("user_id", GetUserID(c)).Msg("movimiento actualizado")
	return c.JSON(dto.MovementIDResponse{ID: id})
}

// Delete DELETE /api/v1/movements. 200 {id}. El stock no se revierte.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.remove.DeleteMovement(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("movement_id", id).Str("user_id", GetUserID(c)).Msg("movimiento eliminado")
	return c.JSON(dto.MovementIDResponse{ID: id})
}

// Count GET /api/v1/movements/count?kind=toner|drum.
func (h *MovementHandler) Count(c *fiber.Ctx) error {
	n, err := h.query.Count(c.Context(), c.Query("kind"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(n)
}

// GetByID GET /api/v1/movements/:id.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List GET /api/v1/movements?kind=&limit=&offset=.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.ListMovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, h.log, domain.NewValidationError("query", "limit y offset deben ser enteros"))
	}
	list, err := h.query.List(c.Context(), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// Report GET /api/v1/movements/report?kind=. Devuelve el ledger en PDF.
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.query.Report(c.Context(), c.Query("kind"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="movimientos-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(pdf)
}
