package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement es un registro del ledger: una cantidad aplicada al stock de un toner o drum,
// asociada a una impresora. item_id no tiene FK a una sola tabla.
type Movement struct {
	ID        string
	PrinterID string
	ItemID    string
	Quantity  int
	CreatedAt time.Time
}

// MovementFilter filtra lecturas del ledger. Kind vacío = todos; Limit 0 = sin límite.
type MovementFilter struct {
	Kind   ItemKind
	Limit  int
	Offset int
}

// MovementDetails es la vista desnormalizada de un movimiento (impresora + item).
type MovementDetails struct {
	ID        string
	Quantity  int
	CreatedAt time.Time
	Printer   PrinterSummary
	Item      ItemSummary
}

// PrinterSummary datos de la impresora para mostrar.
type PrinterSummary struct {
	ID    string
	Name  string
	Model string
}

// ItemSummary datos del item resuelto. Kind vacío si el item ya no existe en ningún catálogo.
type ItemSummary struct {
	ID    string
	Kind  ItemKind
	Name  string
	Stock *int
	Price *decimal.Decimal
}
