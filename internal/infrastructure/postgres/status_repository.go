package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseInfo datos del servidor para el endpoint de estado.
type DatabaseInfo struct {
	Version           string
	MaxConnections    int
	OpenedConnections int
}

// StatusRepo consulta metadatos del servidor PostgreSQL.
type StatusRepo struct {
	pool *pgxpool.Pool
}

// NewStatusRepository construye el adaptador.
func NewStatusRepository(pool *pgxpool.Pool) *StatusRepo {
	return &StatusRepo{pool: pool}
}

// DatabaseInfo devuelve versión, máximo de conexiones y conexiones abiertas a la base actual.
func (r *StatusRepo) DatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	var info DatabaseInfo
	if err := r.pool.QueryRow(ctx, `SHOW server_version`).Scan(&info.Version); err != nil {
		return nil, dbError("show server_version", err)
	}
	var maxConns string
	if err := r.pool.QueryRow(ctx, `SHOW max_connections`).Scan(&maxConns); err != nil {
		return nil, dbError("show max_connections", err)
	}
	n, err := strconv.Atoi(maxConns)
	if err != nil {
		return nil, dbError("parse max_connections", err)
	}
	info.MaxConnections = n
	err = r.pool.QueryRow(ctx,
		`SELECT count(*) FROM pg_stat_activity WHERE datname = current_database()`,
	).Scan(&info.OpenedConnections)
	if err != nil {
		return nil, dbError("count connections", err)
	}
	return &info, nil
}
