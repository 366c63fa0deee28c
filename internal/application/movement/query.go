package movement

import (
	"context"
	"time"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// QueryUseCase lecturas del ledger. No pasa por el resolver ni por transacciones.
type QueryUseCase struct {
	repo      repository.MovementQueryRepository
	validator *Validator
	reports   ReportGenerator
}

// NewQueryUseCase construye el caso de uso. reports puede ser nil si no se expone el reporte PDF.
func NewQueryUseCase(repo repository.MovementQueryRepository, validator *Validator, reports ReportGenerator) *QueryUseCase {
	return &QueryUseCase{repo: repo, validator: validator, reports: reports}
}

// Count cuenta movimientos; kind vacío cuenta todos.
func (uc *QueryUseCase) Count(ctx context.Context, kind string) (int, error) {
	q := dto.ListMovementsQuery{Kind: kind}
	if err := uc.validator.Struct(&q); err != nil {
		return 0, err
	}
	return uc.repo.Count(ctx, entity.MovementFilter{Kind: entity.ItemKind(kind)})
}

// Get obtiene un movimiento desnormalizado. domain.ErrNotFound si no existe.
func (uc *QueryUseCase) Get(ctx context.Context, rawID string) (*dto.MovementDetailsResponse, error) {
	id, err := uc.validator.ID("id", rawID)
	if err != nil {
		return nil, err
	}
	d, err := uc.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementDetailsResponse(d), nil
}

// List lista movimientos ordenados por created_at ascendente (y id para desempatar).
func (uc *QueryUseCase) List(ctx context.Context, q dto.ListMovementsQuery) ([]dto.MovementDetailsResponse, error) {
	if err := uc.validator.Struct(&q); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListDetails(ctx, entity.MovementFilter{
		Kind:   entity.ItemKind(q.Kind),
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementDetailsResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toMovementDetailsResponse(d))
	}
	return items, nil
}

// Report genera el PDF del ledger (todos los movimientos, o solo los del tipo indicado).
func (uc *QueryUseCase) Report(ctx context.Context, kind string) ([]byte, error) {
	if uc.reports == nil {
		return nil, domain.ErrNotFound
	}
	q := dto.ListMovementsQuery{Kind: kind}
	if err := uc.validator.Struct(&q); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListDetails(ctx, entity.MovementFilter{Kind: entity.ItemKind(kind)})
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateMovementReport(ctx, list, time.Now())
}

func toMovementDetailsResponse(d *entity.MovementDetails) *dto.MovementDetailsResponse {
	if d == nil {
		return nil
	}
	return &dto.MovementDetailsResponse{
		ID: d.ID,
		Printer: dto.PrinterDetailsResponse{
			ID:    d.Printer.ID,
			Name:  d.Printer.Name,
			Model: d.Printer.Model,
		},
		Item: dto.ItemDetailsResponse{
			ID:    d.Item.ID,
			Kind:  string(d.Item.Kind),
			Name:  d.Item.Name,
			Stock: d.Item.Stock,
			Price: d.Item.Price,
		},
		Quantity:  d.Quantity,
		CreatedAt: d.CreatedAt,
	}
}
