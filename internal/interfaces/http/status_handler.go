package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printer-supplies-api/internal/application/status"
	"github.com/jhoicas/printer-supplies-api/pkg/logger"
)

// StatusHandler expone /status y /migrations.
type StatusHandler struct {
	uc  *status.UseCase
	log *logger.Logger
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *status.UseCase, log *logger.Logger) *StatusHandler {
	return &StatusHandler{uc: uc, log: log}
}

// Status GET /api/v1/status.
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// PendingMigrations GET /api/v1/migrations (dry run).
func (h *StatusHandler) PendingMigrations(c *fiber.Ctx) error {
	out, err := h.uc.PendingMigrations(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RunMigrations POST /api/v1/migrations. 201 si aplicó algo, 200 si ya estaba al día.
func (h *StatusHandler) RunMigrations(c *fiber.Ctx) error {
	out, err := h.uc.RunMigrations(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Uint("version", out.Version).Bool("applied", out.Applied).Str("user_id", GetUserID(c)).Msg("migraciones ejecutadas")
	if out.Applied {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}
