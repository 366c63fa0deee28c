package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/application/status"
	"github.com/jhoicas/printer-supplies-api/pkg/logger"
)

// RoleAdmin rol requerido para ejecutar migraciones.
const RoleAdmin = "admin"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterMovement *movement.RegisterMovementUseCase
	UpdateMovement   *movement.UpdateMovementUseCase
	DeleteMovement   *movement.DeleteMovementUseCase
	MovementQuery    *movement.QueryUseCase
	Status           *status.UseCase
	JWTSecret        string // vacío = sin autenticación
	Logger           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Con JWT_SECRET definido todas las rutas de /api/v1 exigen Bearer Token.
	adminOnly := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		adminOnly = RequireRole(RoleAdmin)
	}

	if deps.Status != nil {
		statusHandler := NewStatusHandler(deps.Status, log.Component("status"))
		api.Get("/status", statusHandler.Status)
		api.Get("/migrations", adminOnly, statusHandler.PendingMigrations)
		api.Post("/migrations", adminOnly, statusHandler.RunMigrations)
	}

	movements := api.Group("/movements")
	h := NewMovementHandler(deps.RegisterMovement, deps.UpdateMovement, deps.DeleteMovement, deps.MovementQuery, log.Component("movements"))
	movements.Post("/", h.Create)
	movements.Put("/", h.Update)
	movements.Delete("/", h.Delete)
	// /count y /report antes de /:id
	movements.Get("/count", h.Count)
	movements.Get("/report", h.Report)
	movements.Get("/:id", h.GetByID)
	movements.Get("/", h.List)
}
