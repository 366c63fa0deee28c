package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

var _ movement.KindCache = (*ItemKindCache)(nil)

const kindKeyPrefix = "supplies:item-kind:"

// ItemKindCache guarda id de item → tipo (toner|drum). Solo se cachean resoluciones positivas.
type ItemKindCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

// NewItemKindCache construye el caché. ttl <= 0 significa sin expiración.
func NewItemKindCache(rdb goredis.Cmdable, ttl time.Duration) *ItemKindCache {
	if ttl < 0 {
		ttl = 0
	}
	return &ItemKindCache{rdb: rdb, ttl: ttl}
}

// Get devuelve el tipo cacheado. ok=false si no hay entrada o el valor no es un tipo conocido.
func (c *ItemKindCache) Get(ctx context.Context, itemID string) (entity.ItemKind, bool, error) {
	val, err := c.rdb.Get(ctx, kindKeyPrefix+itemID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	kind := entity.ItemKind(val)
	if !kind.Valid() {
		return "", false, nil
	}
	return kind, true, nil
}

// Set registra el tipo resuelto para itemID.
func (c *ItemKindCache) Set(ctx context.Context, itemID string, kind entity.ItemKind) error {
	return c.rdb.Set(ctx, kindKeyPrefix+itemID, string(kind), c.ttl).Err()
}
