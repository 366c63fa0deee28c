package movement_test

import (
	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/application/movement/movementtest"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

type ledger struct {
	store    *movementtest.Store
	register *movement.RegisterMovementUseCase
	update   *movement.UpdateMovementUseCase
	remove   *movement.DeleteMovementUseCase
	query    *movement.QueryUseCase
}

func newLedger() *ledger {
	store := movementtest.NewStore()
	validator := movement.NewValidator(store)
	resolver := movement.NewItemResolver(store, nil)
	return &ledger{
		store:    store,
		register: movement.NewRegisterMovementUseCase(store, resolver, validator),
		update:   movement.NewUpdateMovementUseCase(store, resolver, validator),
		remove:   movement.NewDeleteMovementUseCase(store, validator),
		query:    movement.NewQueryUseCase(store, validator, nil),
	}
}

func ptr[T any](v T) *T { return &v }

// newLedgerWithCache arma un RegisterMovementUseCase sobre el mismo store con el tipo
// de itemID precargado en caché.
func newLedgerWithCache(l *ledger, itemID string, kind entity.ItemKind) *movement.RegisterMovementUseCase {
	cache := &memCache{kinds: map[string]entity.ItemKind{itemID: kind}}
	validator := movement.NewValidator(l.store)
	return movement.NewRegisterMovementUseCase(l.store, movement.NewItemResolver(l.store, cache), validator)
}

// newUpdateWithCache igual que newLedgerWithCache pero para UpdateMovementUseCase.
func newUpdateWithCache(l *ledger, itemID string, kind entity.ItemKind) *movement.UpdateMovementUseCase {
	cache := &memCache{kinds: map[string]entity.ItemKind{itemID: kind}}
	validator := movement.NewValidator(l.store)
	return movement.NewUpdateMovementUseCase(l.store, movement.NewItemResolver(l.store, cache), validator)
}
