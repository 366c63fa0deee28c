package movement

import (
	"context"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// DeleteMovementUseCase elimina un movimiento del ledger sin revertir el stock aplicado.
type DeleteMovementUseCase struct {
	txRunner  TxRunner
	validator *Validator
}

// NewDeleteMovementUseCase construye el caso de uso.
func NewDeleteMovementUseCase(txRunner TxRunner, validator *Validator) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{txRunner: txRunner, validator: validator}
}

// DeleteMovement devuelve domain.ErrNotFound si el movimiento no existe.
func (uc *DeleteMovementUseCase) DeleteMovement(ctx context.Context, in dto.DeleteMovementRequest) (string, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return "", err
	}
	id := canonicalID(in.ID)

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.StockRepository,
	) error {
		current, err := movRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		return movRepo.Delete(ctx, id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
