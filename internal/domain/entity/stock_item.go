package entity

import "github.com/shopspring/decimal"

// ItemKind distingue los dos catálogos de insumos.
type ItemKind string

const (
	ItemKindToner ItemKind = "toner"
	ItemKindDrum  ItemKind = "drum"
)

// Valid indica si el tipo es uno de los catálogos conocidos.
func (k ItemKind) Valid() bool {
	return k == ItemKindToner || k == ItemKindDrum
}

// ItemRef es la referencia ya resuelta de un item_id: el id junto con el catálogo al que pertenece.
// Se resuelve una sola vez y viaja por validación y escritura.
type ItemRef struct {
	Kind ItemKind
	ID   string
}

// Toner construye una referencia a un toner.
func Toner(id string) ItemRef { return ItemRef{Kind: ItemKindToner, ID: id} }

// Drum construye una referencia a un drum.
func Drum(id string) ItemRef { return ItemRef{Kind: ItemKindDrum, ID: id} }

// StockItem representa una fila de toners o drums. Solo el ledger modifica Stock.
type StockItem struct {
	Kind  ItemKind
	ID    string
	Name  string
	Stock int
	Price *decimal.Decimal
}
