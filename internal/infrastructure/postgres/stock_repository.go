package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo actualiza el stock de toners y drums (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Increment suma delta en la misma sentencia que lee el valor (stock = stock + $1).
// El UPDATE toma el lock de fila; escritores concurrentes sobre el mismo item esperan al Commit.
func (r *StockRepo) Increment(ctx context.Context, ref entity.ItemRef, delta int) (int, error) {
	table, err := itemTable(ref.Kind)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`UPDATE %s SET stock = stock + $1 WHERE id = $2 RETURNING stock`, table)
	var stock int
	err = r.q.QueryRow(ctx, query, delta, ref.ID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, dbError("increment stock", err)
	}
	return stock, nil
}

// LockItem SELECT ... FOR SHARE: el item no puede borrarse mientras la transacción siga abierta.
func (r *StockRepo) LockItem(ctx context.Context, ref entity.ItemRef) error {
	table, err := itemTable(ref.Kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE id = $1 FOR SHARE`, table)
	var one int
	if err := r.q.QueryRow(ctx, query, ref.ID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		return dbError("lock item", err)
	}
	return nil
}

// itemTable traduce el tipo de item a su tabla. Solo acepta los valores del enum.
func itemTable(kind entity.ItemKind) (string, error) {
	switch kind {
	case entity.ItemKindToner:
		return "toners", nil
	case entity.ItemKindDrum:
		return "drums", nil
	}
	return "", fmt.Errorf("%w: tipo de item %q", domain.ErrInvalidInput, kind)
}
