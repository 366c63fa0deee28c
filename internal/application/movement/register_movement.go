package movement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// RegisterMovementUseCase registra un movimiento y suma la cantidad al stock del item
// resuelto, ambas escrituras en una misma transacción.
type RegisterMovementUseCase struct {
	txRunner  TxRunner
	resolver  *ItemResolver
	validator *Validator
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, resolver *ItemResolver, validator *Validator) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:  txRunner,
		resolver:  resolver,
		validator: validator,
	}
}

// RegisterMovement valida, resuelve el item y dentro de una transacción incrementa el stock
// (UPDATE ... SET stock = stock + $1, que bloquea la fila hasta el Commit) e inserta el movimiento.
// Devuelve el id del movimiento nuevo.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.CreateMovementRequest) (string, error) {
	if err := uc.validator.Struct(&in); err != nil {
		return "", err
	}
	printerID := canonicalID(in.PrinterID)
	itemID := canonicalID(in.ItemID)

	ref, err := uc.resolver.Resolve(ctx, itemID)
	if err != nil {
		return "", err
	}
	if err := uc.validator.Quantity(in.Quantity); err != nil {
		return "", err
	}
	if err := uc.validator.RequirePrinter(ctx, printerID); err != nil {
		return "", err
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		PrinterID: printerID,
		ItemID:    ref.ID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if _, err := stockRepo.Increment(ctx, ref, mov.Quantity); err != nil {
			return err
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return "", err
	}
	return mov.ID, nil
}
