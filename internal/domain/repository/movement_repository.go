package repository

import (
	"context"

	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para las filas del ledger.
// GetForUpdate devuelve (nil, nil) si el movimiento no existe.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// GetForUpdate bloquea la fila del movimiento hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	Delete(ctx context.Context, id string) error
}

// MovementQueryRepository lecturas desnormalizadas del ledger (impresora + item).
type MovementQueryRepository interface {
	Count(ctx context.Context, filter entity.MovementFilter) (int, error)
	GetDetails(ctx context.Context, id string) (*entity.MovementDetails, error)
	ListDetails(ctx context.Context, filter entity.MovementFilter) ([]*entity.MovementDetails, error)
}
