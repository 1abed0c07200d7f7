// Package xlsx exporta los reportes tabulares a hojas de cálculo.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

const defaultSheet = "Sheet1"

var _ usecase.ReportSpreadsheetGenerator = (*ExcelizeGenerator)(nil)

// ExcelizeGenerator implementa usecase.ReportSpreadsheetGenerator.
type ExcelizeGenerator struct{}

func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// column cabecera y ancho de columna.
type column struct {
	header string
	width  float64
}

var inventoryColumns = []column{
	{"ID", 8},
	{"Nombre", 30},
	{"Categoría", 18},
	{"Precio", 12},
	{"Stock", 10},
	{"Stock Mínimo", 14},
	{"Valor Total", 14},
	{"Stock Bajo", 12},
}

var salesColumns = []column{
	{"ID", 8},
	{"Cliente", 30},
	{"Total", 12},
	{"Fecha", 20},
	{"Usuario", 20},
}

// InventoryXLSX una fila por producto. Los importes se escriben como números
// con formato de moneda para que la hoja pueda sumarlos.
func (g *ExcelizeGenerator) InventoryXLSX(_ context.Context, r usecase.InventoryReport, currency func() string) ([]byte, error) {
	rows := make([][]any, 0, len(r.Products))
	for _, p := range r.Products {
		bajo := "No"
		if p.IsLowStock() {
			bajo = "Sí"
		}
		rows = append(rows, []any{
			p.ID,
			p.Nombre,
			p.Categoria,
			asFloat(p.Precio),
			p.Stock,
			p.StockMinimo,
			asFloat(p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))),
			bajo,
		})
	}
	return build("Inventario", inventoryColumns, rows, []int{4, 7}, symbol(currency))
}

// SalesXLSX una fila por venta del período.
func (g *ExcelizeGenerator) SalesXLSX(_ context.Context, r usecase.SalesReport, currency func() string) ([]byte, error) {
	rows := make([][]any, 0, len(r.Sales)+2)
	for _, s := range r.Sales {
		vendedor := s.VendedorOSistema()
		rows = append(rows, []any{
			s.ID,
			s.Cliente,
			asFloat(s.Total),
			s.Fecha.Format(time.DateTime),
			vendedor,
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"Total", fmt.Sprintf("%d ventas", r.Summary.Cantidad), asFloat(r.Summary.Total)},
	)
	return build("Ventas", salesColumns, rows, []int{3}, symbol(currency))
}

// build arma un libro con una sola hoja. moneyCols son columnas 1-based con importes.
func build(sheet string, cols []column, rows [][]any, moneyCols []int, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"34495E"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}
	numFmt := fmt.Sprintf(`"%s "#,##0.00`, currency)
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de moneda: %w", err)
	}

	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, c.header); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera %s: %w", cell, err)
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}

	for i, values := range rows {
		if len(values) == 0 {
			continue
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	if n := len(rows); n > 0 {
		for _, c := range moneyCols {
			top, _ := excelize.CoordinatesToCellName(c, 2)
			bottom, _ := excelize.CoordinatesToCellName(c, n+1)
			if err := f.SetCellStyle(sheet, top, bottom, moneyStyle); err != nil {
				return nil, fmt.Errorf("xlsx: estilo de moneda: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func asFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func symbol(currency func() string) string {
	if currency == nil {
		return entity.DefaultCurrency
	}
	return currency()
}
