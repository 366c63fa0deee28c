package movement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/application/movement/movementtest"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

type memCache struct {
	kinds map[string]entity.ItemKind
	err   error
	sets  int
}

func (c *memCache) Get(_ context.Context, id string) (entity.ItemKind, bool, error) {
	if c.err != nil {
		return "", false, c.err
	}
	k, ok := c.kinds[id]
	return k, ok, nil
}

func (c *memCache) Set(_ context.Context, id string, kind entity.ItemKind) error {
	c.sets++
	if c.kinds == nil {
		c.kinds = map[string]entity.ItemKind{}
	}
	c.kinds[id] = kind
	return c.err
}

func TestResolve_TonerYDrum(t *testing.T) {
	store := movementtest.NewStore()
	tonerID := store.AddToner("CF258A", 0)
	drumID := store.AddDrum("DR-2400", 0)
	r := movement.NewItemResolver(store, nil)

	ref, err := r.Resolve(context.Background(), tonerID)
	require.NoError(t, err)
	assert.Equal(t, entity.Toner(tonerID), ref)

	ref, err = r.Resolve(context.Background(), drumID)
	require.NoError(t, err)
	assert.Equal(t, entity.Drum(drumID), ref)
}

func TestResolve_EnAmbosCatalogosGanaToner(t *testing.T) {
	store := movementtest.NewStore()
	id := uuid.New().String()
	store.AddItemWithID(entity.ItemKindDrum, id, "drum", 0)
	store.AddItemWithID(entity.ItemKindToner, id, "toner", 0)

	ref, err := movement.NewItemResolver(store, nil).Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemKindToner, ref.Kind)
}

func TestResolve_NoExiste(t *testing.T) {
	store := movementtest.NewStore()
	_, err := movement.NewItemResolver(store, nil).Resolve(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestResolve_UsaCache(t *testing.T) {
	store := movementtest.NewStore()
	drumID := store.AddDrum("DR-2400", 0)
	cache := &memCache{}
	r := movement.NewItemResolver(store, cache)

	_, err := r.Resolve(context.Background(), drumID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, entity.ItemKindDrum, cache.kinds[drumID])

	// La segunda resolución sale del caché aunque el catálogo ya no lo tenga.
	store.RemoveItem(entity.Drum(drumID))
	ref, err := r.Resolve(context.Background(), drumID)
	require.NoError(t, err)
	assert.Equal(t, entity.Drum(drumID), ref)
	assert.Equal(t, 1, cache.sets)
}

func TestResolve_NoCacheaNegativos(t *testing.T) {
	cache := &memCache{}
	r := movement.NewItemResolver(movementtest.NewStore(), cache)

	_, err := r.Resolve(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Zero(t, cache.sets)
}

func TestResolve_CacheCaidoNoBloquea(t *testing.T) {
	store := movementtest.NewStore()
	tonerID := store.AddToner("CF258A", 0)
	r := movement.NewItemResolver(store, &memCache{err: errors.New("redis down")})

	ref, err := r.Resolve(context.Background(), tonerID)
	require.NoError(t, err)
	assert.Equal(t, entity.Toner(tonerID), ref)
}
