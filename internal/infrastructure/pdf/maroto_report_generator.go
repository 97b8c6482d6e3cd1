// Package pdf implementa la exportación del reporte de inventario del
// laboratorio usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Componentes / Unidades / Valor total / En alerta  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Part # | Nombre | Categoría | Ubic. | Cant | Nivel  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: componentes en stock bajo o crítico               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	generatedAt time.Time,
	components []*entity.Component,
	lowStock []*entity.Component,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(components, lowStock))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla del catálogo
	m.AddRows(tableHeaderRow())
	for _, r := range tableComponentRows(components) {
		m.AddRows(r)
	}

	// Sección de alertas
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range lowStockRows(lowStock) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Laboratorio de electrónica", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del catálogo.
func summaryRow(components, lowStock []*entity.Component) core.Row {
	var totalUnits int64
	totalValue := decimal.Zero
	for _, c := range components {
		totalUnits += c.Quantity
		totalValue = totalValue.Add(c.UnitPrice.Mul(decimal.NewFromInt(c.Quantity)))
	}

	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 5}),
		)
	}

	return row.New(13).Add(
		cell("Componentes", fmt.Sprintf("%d", len(components)), colorPrimary),
		cell("Unidades en stock", fmt.Sprintf("%d", totalUnits), colorPrimary),
		cell("Valor total", "$"+formatMoney(totalValue.StringFixed(0)), colorPrimary),
		cell("En alerta de stock", fmt.Sprintf("%d", len(lowStock)), colorAlert),
	)
}

// tableHeaderRow: cabecera de la tabla del catálogo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Part #", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Ubicación", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("P. Unit.", 1, align.Right),
		h("Nivel", 1, align.Center),
	)
}

// tableComponentRows: una fila por componente del catálogo.
func tableComponentRows(components []*entity.Component) []core.Row {
	result := make([]core.Row, 0, len(components))
	for _, c := range components {
		level := stock.LowStockCheck(c.Quantity, c.CriticalLowThreshold)
		levelColor := colorGray
		if level != stock.LevelGood {
			levelColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(c.PartNumber, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(c.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(c.Category, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(c.Location, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", c.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New("$"+formatMoney(c.UnitPrice.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(levelLabel(level), props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: levelColor,
			})),
		))
	}
	return result
}

// lowStockRows: sección con los componentes bajo el umbral de alerta.
func lowStockRows(lowStock []*entity.Component) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("COMPONENTES EN ALERTA DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 1,
			}),
		)),
	}

	if len(lowStock) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin componentes bajo el umbral de alerta.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
		return rows
	}

	for _, c := range lowStock {
		level := stock.LowStockCheck(c.Quantity, c.CriticalLowThreshold)
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s (%s): %d unidades, umbral %d, nivel %s",
				c.Name, c.PartNumber, c.Quantity, c.CriticalLowThreshold, levelLabel(level),
			), props.Text{Size: 7.5, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func levelLabel(level string) string {
	switch level {
	case stock.LevelCritical:
		return "crítico"
	case stock.LevelLow:
		return "bajo"
	default:
		return "ok"
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
