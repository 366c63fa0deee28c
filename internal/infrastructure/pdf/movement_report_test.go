package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

func TestGenerateMovementReport(t *testing.T) {
	stock := 12
	movements := []*entity.MovementDetails{
		{
			ID:        "m1",
			Quantity:  5,
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Printer:   entity.PrinterSummary{ID: "p1", Name: "Recepción", Model: "M404"},
			Item:      entity.ItemSummary{ID: "t1", Kind: entity.ItemKindToner, Name: "CF258A", Stock: &stock},
		},
		{
			ID:        "m2",
			Quantity:  2,
			CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			Item:      entity.ItemSummary{ID: "borrado"},
		},
	}

	out, err := NewMovementReportGenerator("").GenerateMovementReport(context.Background(), movements, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateMovementReport_Vacio(t *testing.T) {
	out, err := NewMovementReportGenerator("Ledger").GenerateMovementReport(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Recepción (M404)", printerLabel(entity.PrinterSummary{ID: "p1", Name: "Recepción", Model: "M404"}))
	assert.Equal(t, "p1", printerLabel(entity.PrinterSummary{ID: "p1"}))
	assert.Equal(t, "-", stockLabel(nil))
	n := 3
	assert.Equal(t, "3", stockLabel(&n))
}
