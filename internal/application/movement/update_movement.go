package movement

import (
	"context"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// UpdateMovementUseCase actualiza campos de un movimiento existente.
// No recalcula el stock del item: el ledger deja de coincidir con el stock si cambia quantity.
type UpdateMovementUseCase struct {
	txRunner  TxRunner
	resolver  *ItemResolver
	validator *Validator
}

// NewUpdateMovementUseCase construye el caso de uso.
func NewUpdateMovementUseCase(txRunner TxRunner, resolver *ItemResolver, validator *Validator) *UpdateMovementUseCase {
	return &UpdateMovementUseCase{
		txRunner:  txRunner,
		resolver:  resolver,
		validator: validator,
	}
}

// UpdateMovement aplica solo los campos presentes. Sin campos, o sin cambio efectivo,
// devuelve domain.ErrNotModified; si el movimiento no existe, domain.ErrNotFound.
func (uc *UpdateMovementUseCase) UpdateMovement(ctx context.Context, in dto.UpdateMovementRequest) (string, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return "", err
	}
	id := canonicalID(in.ID)

	var printerID *string
	var item *entity.ItemRef
	if in.Quantity != nil {
		if err := uc.validator.Quantity(*in.Quantity); err != nil {
			return "", err
		}
	}
	if in.PrinterID != nil {
		p := canonicalID(*in.PrinterID)
		if err := uc.validator.RequirePrinter(ctx, p); err != nil {
			return "", err
		}
		printerID = &p
	}
	if in.ItemID != nil {
		ref, err := uc.resolver.Resolve(ctx, canonicalID(*in.ItemID))
		if err != nil {
			return "", err
		}
		item = &ref
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		current, err := movRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		// El resolver pudo responder desde caché; movements.item_id no tiene FK.
		if item != nil {
			if err := stockRepo.LockItem(ctx, *item); err != nil {
				return err
			}
		}

		changed := false
		if printerID != nil && *printerID != current.PrinterID {
			current.PrinterID = *printerID
			changed = true
		}
		if item != nil && item.ID != current.ItemID {
			current.ItemID = item.ID
			changed = true
		}
		if in.Quantity != nil && *in.Quantity != current.Quantity {
			current.Quantity = *in.Quantity
			changed = true
		}
		if !changed {
			return domain.ErrNotModified
		}
		return movRepo.Update(ctx, current)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
