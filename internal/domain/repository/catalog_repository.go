package repository

import "context"

// CatalogRepository consultas de existencia sobre el catálogo (toners, drums, impresoras).
// El CRUD del catálogo vive fuera de este servicio.
type CatalogRepository interface {
	TonerExists(ctx context.Context, id string) (bool, error)
	DrumExists(ctx context.Context, id string) (bool, error)
	PrinterExists(ctx context.Context, id string) (bool, error)
}
