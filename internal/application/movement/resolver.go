package movement

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// ItemResolver determina si un item_id pertenece al catálogo de toners o al de drums.
type ItemResolver struct {
	catalog repository.CatalogRepository
	cache   KindCache
}

// NewItemResolver construye el resolver. cache puede ser nil.
func NewItemResolver(catalog repository.CatalogRepository, cache KindCache) *ItemResolver {
	return &ItemResolver{catalog: catalog, cache: cache}
}

// Resolve consulta ambos catálogos de forma independiente.
// Si el id aparece en los dos gana Toner; si no aparece en ninguno devuelve domain.ErrItemNotFound.
func (r *ItemResolver) Resolve(ctx context.Context, itemID string) (entity.ItemRef, error) {
	if r.cache != nil {
		kind, ok, err := r.cache.Get(ctx, itemID)
		if err != nil {
			log.Warn().Err(err).Str("item_id", itemID).Msg("cache de tipo de item no disponible")
		} else if ok && kind.Valid() {
			return entity.ItemRef{Kind: kind, ID: itemID}, nil
		}
	}

	isToner, err := r.catalog.TonerExists(ctx, itemID)
	if err != nil {
		return entity.ItemRef{}, err
	}
	isDrum, err := r.catalog.DrumExists(ctx, itemID)
	if err != nil {
		return entity.ItemRef{}, err
	}

	var ref entity.ItemRef
	switch {
	case isToner && isDrum:
		log.Warn().Str("item_id", itemID).Msg("id presente en toners y drums, se resuelve como toner")
		ref = entity.Toner(itemID)
	case isToner:
		ref = entity.Toner(itemID)
	case isDrum:
		ref = entity.Drum(itemID)
	default:
		return entity.ItemRef{}, domain.ErrItemNotFound
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, itemID, ref.Kind); err != nil {
			log.Warn().Err(err).Str("item_id", itemID).Msg("no se pudo guardar el tipo de item en cache")
		}
	}
	return ref, nil
}
