package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // driver "pgx5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/printer-supplies-api/pkg/config"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationState versión del esquema. Applied indica si la última corrida aplicó algo.
type MigrationState struct {
	Version uint
	Dirty   bool
	Applied bool
}

// Migrator aplica las migraciones embebidas con golang-migrate.
type Migrator struct {
	dsn string
}

// NewMigrator construye el migrador con la misma conexión configurada para el pool.
func NewMigrator(cfg config.DBConfig) *Migrator {
	return &Migrator{dsn: cfg.ConnectionString()}
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up() (MigrationState, error) {
	return m.run(func(mg *migrate.Migrate) error { return mg.Up() })
}

// Down revierte la última migración aplicada.
func (m *Migrator) Down() (MigrationState, error) {
	return m.run(func(mg *migrate.Migrate) error { return mg.Steps(-1) })
}

// Status informa la versión actual sin aplicar nada (dry run).
func (m *Migrator) Status() (MigrationState, error) {
	return m.run(nil)
}

func (m *Migrator) run(step func(*migrate.Migrate) error) (MigrationState, error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return MigrationState{}, fmt.Errorf("abrir migraciones embebidas: %w", err)
	}
	mg, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(m.dsn))
	if err != nil {
		return MigrationState{}, fmt.Errorf("inicializar migrate: %w", err)
	}
	defer func() { _, _ = mg.Close() }()

	var state MigrationState
	if step != nil {
		switch err := step(mg); {
		case err == nil:
			state.Applied = true
		case errors.Is(err, migrate.ErrNoChange):
		default:
			return state, fmt.Errorf("aplicar migraciones: %w", err)
		}
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return state, fmt.Errorf("leer versión: %w", err)
	}
	state.Version = version
	state.Dirty = dirty
	return state, nil
}

// pgx5URL cambia el esquema del DSN al que registra el driver pgx/v5 de golang-migrate.
func pgx5URL(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
