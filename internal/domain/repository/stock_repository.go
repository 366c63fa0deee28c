package repository

import (
	"context"

	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

// StockRepository actualiza el contador de stock de un toner o drum.
// Usado dentro de transacciones para garantizar consistencia con el ledger.
type StockRepository interface {
	// Increment suma delta al stock en una sola sentencia y devuelve el nuevo valor.
	// Devuelve domain.ErrItemNotFound si la fila no existe.
	Increment(ctx context.Context, ref entity.ItemRef, delta int) (int, error)
	// LockItem comprueba que la fila del item existe y la bloquea en modo compartido
	// hasta el fin de la transacción. Devuelve domain.ErrItemNotFound si no existe.
	LockItem(ctx context.Context, ref entity.ItemRef) error
}
