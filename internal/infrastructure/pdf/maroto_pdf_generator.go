// Package pdf genera los reportes de la cafetería en PDF.
//
// Todos los reportes comparten la misma estructura en A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO + fecha de generación / período                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: etiqueta | valor                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera azul + una fila por registro                │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 44, Green: 62, Blue: 80}
	colorHeader  = &props.Color{Red: 52, Green: 73, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 192, Green: 57, Blue: 43}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 236, Green: 240, Blue: 241}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator author aparece en los metadatos del documento.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// column definición de una columna de tabla.
type column struct {
	label string
	size  int
	align align.Type
}

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
	return maroto.New(cfg)
}

// InventoryPDF reporte de inventario con resumen de stock y valorización.
func (g *MarotoPDFGenerator) InventoryPDF(_ context.Context, r usecase.InventoryReport, currency func() string) ([]byte, error) {
	format := money.Formatter(currency)
	m := g.newDocument("Reporte de Inventario")

	m.AddRows(titleRows("Reporte de Inventario",
		"Fecha de generación: "+r.GeneratedAt.Format("2006-01-02 15:04:05"))...)

	var lowStock, outOfStock int
	total := decimal.Zero
	for _, p := range r.Products {
		if p.IsLowStock() {
			lowStock++
		}
		if p.Stock == 0 {
			outOfStock++
		}
		total = total.Add(inventoryValue(p))
	}
	m.AddRows(summaryRows([][2]string{
		{"Total de Productos", strconv.Itoa(len(r.Products))},
		{"Stock Bajo", strconv.Itoa(lowStock)},
		{"Agotados", strconv.Itoa(outOfStock)},
		{"Valor Total del Inventario", format(total)},
	})...)

	cols := []column{
		{"ID", 1, align.Center},
		{"Nombre", 3, align.Left},
		{"Categoría", 2, align.Left},
		{"Precio", 2, align.Right},
		{"Stock", 1, align.Center},
		{"Stock Mín.", 1, align.Center},
		{"Valor Total", 2, align.Right},
	}
	m.AddRows(tableHeaderRow(cols))
	for i, p := range r.Products {
		var color *props.Color
		if p.IsLowStock() {
			color = colorAlert
		}
		m.AddRows(tableRow(cols, i, color,
			strconv.FormatInt(p.ID, 10),
			p.Nombre,
			p.Categoria,
			format(p.Precio),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.StockMinimo),
			format(inventoryValue(p)),
		))
	}
	return generate(m)
}

// SalesPDF reporte de ventas del período con resumen.
func (g *MarotoPDFGenerator) SalesPDF(_ context.Context, r usecase.SalesReport, currency func() string) ([]byte, error) {
	format := money.Formatter(currency)
	m := g.newDocument("Reporte de Ventas")

	m.AddRows(titleRows("Reporte de Ventas",
		"Período: "+period(r.Desde, r.Hasta),
		"Fecha de generación: "+r.GeneratedAt.Format("2006-01-02 15:04:05"))...)
	m.AddRows(summaryRows([][2]string{
		{"Total de Ventas", strconv.Itoa(r.Summary.Cantidad)},
		{"Monto Total", format(r.Summary.Total)},
		{"Promedio por Venta", format(r.Summary.Promedio)},
	})...)

	cols := []column{
		{"ID", 1, align.Center},
		{"Cliente", 4, align.Left},
		{"Total", 2, align.Right},
		{"Fecha", 3, align.Center},
		{"Usuario", 2, align.Left},
	}
	m.AddRows(tableHeaderRow(cols))
	if len(r.Sales) == 0 {
		m.AddRows(emptyRow("No hay ventas registradas en el período"))
	}
	for i, s := range r.Sales {
		vendedor := s.VendedorOSistema()
		m.AddRows(tableRow(cols, i, nil,
			strconv.FormatInt(s.ID, 10),
			s.Cliente,
			format(s.Total),
			formatDateTime(s.Fecha),
			vendedor,
		))
	}
	return generate(m)
}

// CompletePDF reporte general con datos de la cafetería.
func (g *MarotoPDFGenerator) CompletePDF(_ context.Context, r usecase.CompleteReport, currency func() string) ([]byte, error) {
	format := money.Formatter(currency)
	m := g.newDocument("Reporte Completo del Sistema")

	m.AddRows(titleRows("Reporte Completo del Sistema",
		"Fecha de generación: "+r.GeneratedAt.Format("2006-01-02 15:04:05"))...)

	m.AddRows(sectionRow("Información de la Cafetería"))
	m.AddRows(summaryRows([][2]string{
		{"Nombre", nonEmpty(r.Shop.Nombre, "-")},
		{"Dirección", nonEmpty(r.Shop.Direccion, "-")},
		{"Teléfono", nonEmpty(r.Shop.Telefono, "-")},
		{"Email", nonEmpty(r.Shop.Email, "-")},
		{"RUC", nonEmpty(r.Shop.RUC, "-")},
	})...)

	m.AddRows(sectionRow("Resumen de Ventas (" + period(r.Desde, r.Hasta) + ")"))
	m.AddRows(summaryRows([][2]string{
		{"Total de Ventas", strconv.Itoa(r.Summary.Cantidad)},
		{"Monto Total", format(r.Summary.Total)},
		{"Promedio por Venta", format(r.Summary.Promedio)},
	})...)

	m.AddRows(sectionRow("Productos Más Vendidos"))
	if len(r.TopProducts) == 0 {
		m.AddRows(emptyRow("No hay productos vendidos en el último mes"))
	} else {
		cols := []column{
			{"Producto", 8, align.Left},
			{"Cantidad Vendida", 4, align.Center},
		}
		m.AddRows(tableHeaderRow(cols))
		for i, t := range r.TopProducts {
			m.AddRows(tableRow(cols, i, nil, t.Nombre, strconv.Itoa(t.Cantidad)))
		}
	}

	m.AddRows(sectionRow("Productos con Stock Bajo"))
	if len(r.LowStock) == 0 {
		m.AddRows(emptyRow("Todos los productos tienen stock suficiente"))
	} else {
		cols := []column{
			{"Producto", 6, align.Left},
			{"Stock Actual", 3, align.Center},
			{"Stock Mínimo", 3, align.Center},
		}
		m.AddRows(tableHeaderRow(cols))
		for i, p := range r.LowStock {
			m.AddRows(tableRow(cols, i, colorAlert, p.Nombre, strconv.Itoa(p.Stock), strconv.Itoa(p.StockMinimo)))
		}
	}
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRows(title string, subtitles ...string) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, s := range subtitles {
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(s, props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 1,
		}))))
	}
	return append(rows, line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.5}))
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 4,
	})))
}

// summaryRows pares etiqueta/valor centrados.
func summaryRows(pairs [][2]string) []core.Row {
	rows := make([]core.Row, 0, len(pairs)+1)
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(2),
			col.New(4).Add(text.New(p[0]+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(4).Add(text.New(p[1], props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(2),
		))
	}
	return append(rows, line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.2}))
}

func tableHeaderRow(cols []column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableRow filas alternadas; color resalta el texto (p. ej. stock bajo).
func tableRow(cols []column, index int, color *props.Color, values ...string) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		cells = append(cells, col.New(c.size).Add(text.New(v, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1, Color: color,
		})))
	}
	r := row.New(7).Add(cells...)
	if index%2 == 1 {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 9, Align: align.Center, Color: colorGray, Top: 2,
	})))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func inventoryValue(p *entity.Product) decimal.Decimal {
	return p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))
}

func period(desde, hasta time.Time) string {
	return desde.Format(time.DateOnly) + " a " + hasta.Format(time.DateOnly)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
