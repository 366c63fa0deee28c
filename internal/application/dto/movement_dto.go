package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/v1/movements.
type CreateMovementRequest struct {
	PrinterID string `json:"printer_id" validate:"required,id"`
	ItemID    string `json:"item_id" validate:"required,id"`
	Quantity  int    `json:"quantity"`
}

// UpdateMovementRequest body para PUT /api/v1/movements. Los campos nil no se tocan.
type UpdateMovementRequest struct {
	ID        string  `json:"id" validate:"required,id"`
	PrinterID *string `json:"printer_id,omitempty" validate:"omitempty,id"`
	ItemID    *string `json:"item_id,omitempty" validate:"omitempty,id"`
	Quantity  *int    `json:"quantity,omitempty"`
}

// DeleteMovementRequest body para DELETE /api/v1/movements.
type DeleteMovementRequest struct {
	ID string `json:"id" validate:"required,id"`
}

// ListMovementsQuery filtros de GET /api/v1/movements.
type ListMovementsQuery struct {
	PageRequest
	Kind string `query:"kind" validate:"omitempty,oneof=toner drum"`
}

// MovementIDResponse respuesta de las operaciones de escritura.
type MovementIDResponse struct {
	ID string `json:"id"`
}

// MovementDetailsResponse movimiento con impresora e item desnormalizados.
type MovementDetailsResponse struct {
	ID        string                 `json:"id"`
	Printer   PrinterDetailsResponse `json:"printer"`
	Item      ItemDetailsResponse    `json:"item"`
	Quantity  int                    `json:"quantity"`
	CreatedAt time.Time              `json:"created_at"`
}

// PrinterDetailsResponse datos de la impresora dentro de un movimiento.
type PrinterDetailsResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}

// ItemDetailsResponse datos del toner o drum dentro de un movimiento.
type ItemDetailsResponse struct {
	ID    string           `json:"id"`
	Kind  string           `json:"kind,omitempty"`
	Name  string           `json:"name"`
	Stock *int             `json:"stock,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}
