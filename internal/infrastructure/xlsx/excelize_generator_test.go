package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestInventoryXLSX(t *testing.T) {
	g := NewExcelizeGenerator()
	data, err := g.InventoryXLSX(context.Background(), usecase.InventoryReport{
		GeneratedAt: time.Now(),
		Products: []*entity.Product{
			{ID: 1, Nombre: "Latte", Categoria: "Café", Precio: decimal.RequireFromString("9.50"), Stock: 4, StockMinimo: 5},
			{ID: 2, Nombre: "Té Verde", Categoria: "Té", Precio: decimal.RequireFromString("6.00"), Stock: 50, StockMinimo: 5},
		},
	}, func() string { return "S/" })
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, []string{"Inventario"}, f.GetSheetList())

	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Nombre", rows[0][1])
	assert.Equal(t, "Latte", rows[1][1])
	assert.Equal(t, "Sí", rows[1][7])
	assert.Equal(t, "No", rows[2][7])

	valor, err := f.GetCellValue("Inventario", "G2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "38", valor)
}

func TestSalesXLSX_TotalRow(t *testing.T) {
	g := NewExcelizeGenerator()
	data, err := g.SalesXLSX(context.Background(), usecase.SalesReport{
		Sales: []*entity.Sale{
			{ID: 10, Cliente: "Ana", Total: decimal.RequireFromString("12.00"), Fecha: time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)},
		},
		Summary: entity.SalesSummary{Cantidad: 1, Total: decimal.RequireFromString("12.00")},
	}, nil)
	require.NoError(t, err)

	f := open(t, data)
	cliente, err := f.GetCellValue("Ventas", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", cliente)

	usuario, err := f.GetCellValue("Ventas", "E2")
	require.NoError(t, err)
	assert.Equal(t, entity.UsuarioSistema, usuario)

	label, err := f.GetCellValue("Ventas", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)

	total, err := f.GetCellValue("Ventas", "C4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "12", total)
}
