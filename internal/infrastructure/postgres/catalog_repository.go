package postgres

import (
	"context"

	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo consultas de existencia sobre las tablas del catálogo.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// TonerExists indica si el id está en toners.
func (r *CatalogRepo) TonerExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "toner exists", `SELECT EXISTS (SELECT 1 FROM toners WHERE id = $1)`, id)
}

// DrumExists indica si el id está en drums.
func (r *CatalogRepo) DrumExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "drum exists", `SELECT EXISTS (SELECT 1 FROM drums WHERE id = $1)`, id)
}

// PrinterExists indica si el id está en printers.
func (r *CatalogRepo) PrinterExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "printer exists", `SELECT EXISTS (SELECT 1 FROM printers WHERE id = $1)`, id)
}

func (r *CatalogRepo) exists(ctx context.Context, op, query, id string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, dbError(op, err)
	}
	return ok, nil
}
