package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/application/status"
	infrapdf "github.com/jhoicas/printer-supplies-api/internal/infrastructure/pdf"
	"github.com/jhoicas/printer-supplies-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/printer-supplies-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/printer-supplies-api/internal/interfaces/http"
)

func newServeCmd() *cobra.Command {
	var migrateOnStart bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), migrateOnStart)
		},
	}
	cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "aplicar migraciones pendientes antes de escuchar")
	return cmd
}

func runServe(ctx context.Context, migrateOnStart bool) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrator := postgres.NewMigrator(cfg.DB)
	if migrateOnStart {
		state, err := migrator.Up()
		if err != nil {
			return err
		}
		log.Info().Uint("version", state.Version).Bool("applied", state.Applied).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return err
	}
	defer pool.Close()

	// Caché de tipos de item: opcional, solo con REDIS_ADDR.
	var kindCache movement.KindCache
	rdb, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible, se resuelve siempre contra PostgreSQL")
	} else if rdb != nil {
		defer rdb.Close()
		kindCache = infraredis.NewItemKindCache(rdb, cfg.Redis.KindTTL)
	}

	catalogRepo := postgres.NewCatalogRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validator := movement.NewValidator(catalogRepo)
	resolver := movement.NewItemResolver(catalogRepo, kindCache)
	reports := infrapdf.NewMovementReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterMovement: movement.NewRegisterMovementUseCase(txRunner, resolver, validator),
		UpdateMovement:   movement.NewUpdateMovementUseCase(txRunner, resolver, validator),
		DeleteMovement:   movement.NewDeleteMovementUseCase(txRunner, validator),
		MovementQuery:    movement.NewQueryUseCase(movementRepo, validator, reports),
		Status:           status.NewUseCase(postgres.NewStatusRepository(pool), migrator),
		JWTSecret:        cfg.JWT.Secret,
		Logger:           log,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige autenticación")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
