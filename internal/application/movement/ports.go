package movement

import (
	"context"
	"time"

	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error (o el contexto se cancela) la transacción se revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// KindCache guarda resoluciones positivas item_id -> catálogo. Opcional.
type KindCache interface {
	Get(ctx context.Context, itemID string) (entity.ItemKind, bool, error)
	Set(ctx context.Context, itemID string, kind entity.ItemKind) error
}

// ReportGenerator genera la representación en PDF del ledger.
type ReportGenerator interface {
	GenerateMovementReport(ctx context.Context, movements []*entity.MovementDetails, generatedAt time.Time) ([]byte, error)
}
