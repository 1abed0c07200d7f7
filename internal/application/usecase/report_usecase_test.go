package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

func TestDashboard(t *testing.T) {
	reports := new(MockReportRepository)
	products := new(MockProductRepository)
	uc := NewReportUseCase(reports, products)

	reports.On("CountProducts", mock.Anything).Return(25, nil)
	reports.On("CountCustomers", mock.Anything).Return(8, nil)
	reports.On("SalesToday", mock.Anything).Return(decimal.RequireFromString("153.50"), nil)
	products.On("ListLowStock", mock.Anything).Return([]*entity.Product{
		{Nombre: "Brownie", Stock: 0, StockMinimo: 5},
		{Nombre: "Latte", Stock: 4, StockMinimo: 10},
	}, nil)

	d, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, d.TotalProductos)
	assert.Equal(t, 8, d.TotalClientes)
	assert.Equal(t, 2, d.StockBajo)
	assert.Equal(t, "153.5", d.VentasHoy.String())
	assert.Equal(t, []string{
		"Brownie está agotado (mínimo 5)",
		"Stock bajo: Latte (4 de 10)",
	}, d.Notificaciones)
}

func TestDashboard_PropagatesError(t *testing.T) {
	reports := new(MockReportRepository)
	products := new(MockProductRepository)
	uc := NewReportUseCase(reports, products)

	reports.On("CountProducts", mock.Anything).Return(0, nil)
	reports.On("CountCustomers", mock.Anything).Return(0, domain.ErrConnection)
	reports.On("SalesToday", mock.Anything).Return(decimal.Zero, nil)
	products.On("ListLowStock", mock.Anything).Return([]*entity.Product{}, nil)

	d, err := uc.Dashboard(context.Background())
	assert.Nil(t, d)
	assert.ErrorIs(t, err, domain.ErrConnection)
}

func TestReportWindows(t *testing.T) {
	reports := new(MockReportRepository)
	uc := NewReportUseCase(reports, nil)
	ctx := context.Background()

	reports.On("SalesByDay", ctx, 7).Return([]entity.DailySales{{Dia: "2024-03-01", Total: decimal.NewFromInt(10)}}, nil)
	reports.On("TopProducts", ctx, 30, 10).Return([]entity.TopProduct{}, nil)

	days, err := uc.SalesByDay(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 1)
	_, err = uc.TopProducts(ctx)
	require.NoError(t, err)
	reports.AssertExpectations(t)
}

func TestSalesSummary_InvertedRange(t *testing.T) {
	uc := NewReportUseCase(new(MockReportRepository), nil)
	hoy := time.Now()
	_, err := uc.SalesSummary(context.Background(), hoy, hoy.AddDate(0, 0, -2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Archivos de reporte ──────────────────────────────────────────────────────

type fakePDF struct {
	inventory InventoryReport
	sales     SalesReport
	complete  CompleteReport
	currency  string
	err       error
}

func (f *fakePDF) InventoryPDF(_ context.Context, r InventoryReport, currency func() string) ([]byte, error) {
	f.inventory, f.currency = r, currency()
	return []byte("%PDF-inventario"), f.err
}

func (f *fakePDF) SalesPDF(_ context.Context, r SalesReport, currency func() string) ([]byte, error) {
	f.sales, f.currency = r, currency()
	return []byte("%PDF-ventas"), f.err
}

func (f *fakePDF) CompletePDF(_ context.Context, r CompleteReport, currency func() string) ([]byte, error) {
	f.complete, f.currency = r, currency()
	return []byte("%PDF-completo"), f.err
}

type fakeXLSX struct {
	calls int
}

func (f *fakeXLSX) InventoryXLSX(context.Context, InventoryReport, func() string) ([]byte, error) {
	f.calls++
	return []byte("PK"), nil
}

func (f *fakeXLSX) SalesXLSX(context.Context, SalesReport, func() string) ([]byte, error) {
	f.calls++
	return []byte("PK"), nil
}

type fakeArchive struct {
	saved map[string][]byte
	err   error
}

func (f *fakeArchive) Save(_ context.Context, filename string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[filename] = data
	return "/tmp/reportes/" + filename, nil
}

type reportFileFixture struct {
	uc       *ReportFileUseCase
	products *MockProductRepository
	sales    *MockSaleRepository
	reports  *MockReportRepository
	config   *MockConfigRepository
	pdf      *fakePDF
	xlsx     *fakeXLSX
	archive  *fakeArchive
}

var fixedNow = time.Date(2024, 6, 15, 14, 30, 5, 0, time.Local)

func newReportFileFixture() *reportFileFixture {
	f := &reportFileFixture{
		products: new(MockProductRepository),
		sales:    new(MockSaleRepository),
		reports:  new(MockReportRepository),
		config:   new(MockConfigRepository),
		pdf:      &fakePDF{},
		xlsx:     &fakeXLSX{},
		archive:  &fakeArchive{},
	}
	f.config.On("Get", mock.Anything, entity.ConfigMoneda).Return(&entity.ConfigEntry{Valor: "S/"}, nil)
	f.uc = NewReportFileUseCase(f.products, f.sales, f.reports, NewConfigUseCase(f.config, "", nil),
		f.pdf, f.xlsx, f.archive, nil)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "reporte_ventas_20240615_143005.pdf", ReportFilename("reporte_ventas", FormatPDF, fixedNow))
	assert.Equal(t, "reporte_inventario_20240615_143005.xlsx", ReportFilename("reporte_inventario", FormatXLSX, fixedNow))
}

func TestInventoryReport_PDFArchived(t *testing.T) {
	f := newReportFileFixture()
	f.products.On("List", mock.Anything).Return([]*entity.Product{{ID: 1, Nombre: "Latte"}}, nil)

	out, err := f.uc.Inventory(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "reporte_inventario_20240615_143005.pdf", out.Filename)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, "/tmp/reportes/"+out.Filename, out.Path)
	assert.Contains(t, f.archive.saved, out.Filename)
	assert.Len(t, f.pdf.inventory.Products, 1)
	assert.Equal(t, "S/", f.pdf.currency)
}

func TestInventoryReport_XLSXAndUnknownFormat(t *testing.T) {
	f := newReportFileFixture()
	f.products.On("List", mock.Anything).Return([]*entity.Product{}, nil)

	out, err := f.uc.Inventory(context.Background(), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, 1, f.xlsx.calls)
	assert.Contains(t, out.ContentType, "spreadsheetml")

	_, err = f.uc.Inventory(context.Background(), "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin fechas se toman los últimos 30 días calendario, hoy incluido.
func TestSalesReport_DefaultPeriod(t *testing.T) {
	f := newReportFileFixture()
	desde := fixedNow.AddDate(0, 0, -29) // 17 de mayo
	summary := entity.SalesSummary{Cantidad: 2, Total: decimal.NewFromInt(30), Promedio: decimal.NewFromInt(15)}
	f.sales.On("FilterByDates", mock.Anything, desde, fixedNow).Return([]*entity.Sale{{ID: 1}, {ID: 2}}, nil)
	f.reports.On("SalesSummary", mock.Anything, desde, fixedNow).Return(summary, nil)

	out, err := f.uc.Sales(context.Background(), FormatPDF, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "reporte_ventas_20240615_143005.pdf", out.Filename)
	assert.Equal(t, desde, f.pdf.sales.Desde)
	assert.Equal(t, summary, f.pdf.sales.Summary)
	assert.Len(t, f.pdf.sales.Sales, 2)

	dias := 0
	for d := f.pdf.sales.Desde; !d.After(fixedNow); d = d.AddDate(0, 0, 1) {
		dias++
	}
	assert.Equal(t, 30, dias, "el rango inclusivo cubre 30 días")
}

// Un fallo al archivar no invalida el reporte.
func TestCompleteReport_ArchiveFailureIsNotFatal(t *testing.T) {
	f := newReportFileFixture()
	f.archive.err = errors.New("disco lleno")
	f.config.On("GetAll", mock.Anything).Return([]*entity.ConfigEntry{{Clave: entity.ConfigNombre, Valor: "Nexus Coffee"}}, nil)
	f.reports.On("SalesSummary", mock.Anything, mock.Anything, fixedNow).Return(entity.SalesSummary{}, nil)
	f.reports.On("TopProducts", mock.Anything, 30, 10).Return([]entity.TopProduct{{Nombre: "Latte", Cantidad: 40}}, nil)
	f.products.On("ListLowStock", mock.Anything).Return([]*entity.Product{}, nil)

	out, err := f.uc.Complete(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Path)
	assert.Equal(t, "reporte_completo_20240615_143005.pdf", out.Filename)
	assert.Equal(t, "Nexus Coffee", f.pdf.complete.Shop.Nombre)
	assert.Len(t, f.pdf.complete.TopProducts, 1)
}

func TestSalesReport_GeneratorError(t *testing.T) {
	f := newReportFileFixture()
	f.pdf.err = errors.New("fuente no encontrada")
	f.sales.On("FilterByDates", mock.Anything, mock.Anything, mock.Anything).Return([]*entity.Sale{}, nil)
	f.reports.On("SalesSummary", mock.Anything, mock.Anything, mock.Anything).Return(entity.SalesSummary{}, nil)

	_, err := f.uc.Sales(context.Background(), FormatPDF, time.Time{}, time.Time{})
	assert.ErrorContains(t, err, "fuente no encontrada")
}
