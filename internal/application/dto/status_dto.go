package dto

import "time"

// StatusResponse estado del API y de sus dependencias.
type StatusResponse struct {
	UpdatedAt    time.Time          `json:"updated_at"`
	Dependencies DependenciesStatus `json:"dependencies"`
}

// DependenciesStatus dependencias externas reportadas.
type DependenciesStatus struct {
	Database DatabaseStatus `json:"database"`
}

// DatabaseStatus información del servidor PostgreSQL.
type DatabaseStatus struct {
	Version           string `json:"version"`
	MaxConnections    int    `json:"max_connections"`
	OpenedConnections int    `json:"opened_connections"`
}

// MigrationStatusResponse versión del esquema tras una corrida (o dry run) de migraciones.
type MigrationStatusResponse struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
	Applied bool `json:"applied"`
}
