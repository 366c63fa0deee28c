// Package pdf genera el reporte del ledger de movimientos con Maroto v2.
//
// Layout A4:
//
//	HEADER: título + fecha de generación + total de movimientos
//	TABLA:  Fecha | Impresora | Tipo | Item | Cant. | Stock actual
//	RESUMEN: unidades ingresadas por tipo
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
)

var _ movement.ReportGenerator = (*MovementReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MovementReportGenerator implementa movement.ReportGenerator usando Maroto v2.
type MovementReportGenerator struct {
	title string
}

// NewMovementReportGenerator construye el generador. title aparece en el encabezado.
func NewMovementReportGenerator(title string) *MovementReportGenerator {
	if title == "" {
		title = "Movimientos de insumos"
	}
	return &MovementReportGenerator{title: title}
}

// GenerateMovementReport genera el PDF y devuelve sus bytes.
func (g *MovementReportGenerator) GenerateMovementReport(
	_ context.Context,
	movements []*entity.MovementDetails,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(len(movements), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(movements)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(movements)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MovementReportGenerator) headerRow(total int, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d movimientos", total), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Impresora", 3, align.Left),
		h("Tipo", 1, align.Center),
		h("Item", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Stock", 2, align.Right),
	)
}

func tableRows(movements []*entity.MovementDetails) []core.Row {
	rows := make([]core.Row, 0, len(movements))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, d := range movements {
		rows = append(rows, row.New(7).Add(
			cell(d.CreatedAt.Format("02/01/2006"), 2, align.Left),
			cell(printerLabel(d.Printer), 3, align.Left),
			cell(nonEmpty(string(d.Item.Kind), "-"), 1, align.Center),
			cell(nonEmpty(d.Item.Name, d.Item.ID), 3, align.Left),
			cell(strconv.Itoa(d.Quantity), 1, align.Right),
			cell(stockLabel(d.Item.Stock), 2, align.Right),
		))
	}
	return rows
}

// summaryRows unidades ingresadas por tipo de item.
func summaryRows(movements []*entity.MovementDetails) []core.Row {
	totals := map[entity.ItemKind]int{}
	for _, d := range movements {
		totals[d.Item.Kind] += d.Quantity
	}
	rows := []core.Row{}
	for _, kind := range []entity.ItemKind{entity.ItemKindToner, entity.ItemKindDrum} {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New("Unidades "+string(kind)+":", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New(strconv.Itoa(totals[kind]), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			})),
		))
	}
	return rows
}

func printerLabel(p entity.PrinterSummary) string {
	if p.Model == "" {
		return nonEmpty(p.Name, p.ID)
	}
	return nonEmpty(p.Name, p.ID) + " (" + p.Model + ")"
}

func stockLabel(stock *int) string {
	if stock == nil {
		return "-"
	}
	return strconv.Itoa(*stock)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
