// Package status expone el estado del servicio (versión de PostgreSQL, conexiones) y
// la ejecución de migraciones del esquema.
package status

import (
	"context"
	"time"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/infrastructure/postgres"
)

// DatabaseInspector lee la información del servidor de base de datos.
type DatabaseInspector interface {
	DatabaseInfo(ctx context.Context) (*postgres.DatabaseInfo, error)
}

// SchemaMigrator aplica o inspecciona las migraciones.
type SchemaMigrator interface {
	Up() (postgres.MigrationState, error)
	Status() (postgres.MigrationState, error)
}

// UseCase agrupa /status y /migrations.
type UseCase struct {
	db       DatabaseInspector
	migrator SchemaMigrator
	now      func() time.Time
}

// NewUseCase construye el caso de uso. migrator puede ser nil si no se exponen migraciones.
func NewUseCase(db DatabaseInspector, migrator SchemaMigrator) *UseCase {
	return &UseCase{db: db, migrator: migrator, now: time.Now}
}

// Status devuelve la versión del servidor y el uso de conexiones.
func (uc *UseCase) Status(ctx context.Context) (*dto.StatusResponse, error) {
	info, err := uc.db.DatabaseInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatusResponse{
		UpdatedAt: uc.now().UTC(),
		Dependencies: dto.DependenciesStatus{
			Database: dto.DatabaseStatus{
				Version:           info.Version,
				MaxConnections:    info.MaxConnections,
				OpenedConnections: info.OpenedConnections,
			},
		},
	}, nil
}

// PendingMigrations informa la versión actual sin aplicar nada.
func (uc *UseCase) PendingMigrations(_ context.Context) (*dto.MigrationStatusResponse, error) {
	if uc.migrator == nil {
		return nil, errMigrationsDisabled
	}
	state, err := uc.migrator.Status()
	if err != nil {
		return nil, err
	}
	return toMigrationResponse(state), nil
}

// RunMigrations aplica las migraciones pendientes.
func (uc *UseCase) RunMigrations(_ context.Context) (*dto.MigrationStatusResponse, error) {
	if uc.migrator == nil {
		return nil, errMigrationsDisabled
	}
	state, err := uc.migrator.Up()
	if err != nil {
		return nil, err
	}
	return toMigrationResponse(state), nil
}

func toMigrationResponse(s postgres.MigrationState) *dto.MigrationStatusResponse {
	return &dto.MigrationStatusResponse{Version: s.Version, Dirty: s.Dirty, Applied: s.Applied}
}
