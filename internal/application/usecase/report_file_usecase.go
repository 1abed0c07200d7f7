package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

// Período por defecto del reporte de ventas y del resumen del reporte completo.
const defaultReportDays = 30

// Formato de archivo soportado por ReportFileUseCase.
type ReportFormat string

const (
	FormatPDF  ReportFormat = "pdf"
	FormatXLSX ReportFormat = "xlsx"
)

// ReportFile resultado de una generación.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	// Path ruta de la copia archivada; vacío si no hay archivo configurado.
	Path string
}

// ReportFileUseCase arma los datos de cada reporte y delega el render.
type ReportFileUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	reports  repository.ReportRepository
	config   *ConfigUseCase
	pdf      ReportPDFGenerator
	xlsx     ReportSpreadsheetGenerator
	archive  ReportArchive
	log      *logger.Logger
	now      func() time.Time
}

// NewReportFileUseCase archive puede ser nil: en ese caso no se guarda copia en disco.
func NewReportFileUseCase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	reports repository.ReportRepository,
	config *ConfigUseCase,
	pdf ReportPDFGenerator,
	xlsx ReportSpreadsheetGenerator,
	archive ReportArchive,
	log *logger.Logger,
) *ReportFileUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportFileUseCase{
		products: products,
		sales:    sales,
		reports:  reports,
		config:   config,
		pdf:      pdf,
		xlsx:     xlsx,
		archive:  archive,
		log:      log,
		now:      time.Now,
	}
}

// Inventory reporte de todos los productos.
func (uc *ReportFileUseCase) Inventory(ctx context.Context, format ReportFormat) (*ReportFile, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: %w", err)
	}
	r := InventoryReport{GeneratedAt: uc.now(), Products: products}
	currency := uc.config.CurrencyAccessor(ctx)

	var data []byte
	switch format {
	case FormatPDF:
		data, err = uc.pdf.InventoryPDF(ctx, r, currency)
	case FormatXLSX:
		data, err = uc.xlsx.InventoryXLSX(ctx, r, currency)
	default:
		return nil, unsupportedFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("reporte inventario: %w", err)
	}
	return uc.finish(ctx, "reporte_inventario", format, r.GeneratedAt, data)
}

// Sales reporte de ventas en [desde, hasta]. Fechas cero equivalen a los
// últimos 30 días.
func (uc *ReportFileUseCase) Sales(ctx context.Context, format ReportFormat, desde, hasta time.Time) (*ReportFile, error) {
	now := uc.now()
	desde, hasta = defaultPeriod(now, desde, hasta)
	if err := validateRange(desde, hasta); err != nil {
		return nil, err
	}

	sales, err := uc.sales.FilterByDates(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reporte ventas: %w", err)
	}
	summary, err := uc.reports.SalesSummary(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reporte ventas: resumen: %w", err)
	}
	r := SalesReport{GeneratedAt: now, Desde: desde, Hasta: hasta, Sales: sales, Summary: summary}
	currency := uc.config.CurrencyAccessor(ctx)

	var data []byte
	switch format {
	case FormatPDF:
		data, err = uc.pdf.SalesPDF(ctx, r, currency)
	case FormatXLSX:
		data, err = uc.xlsx.SalesXLSX(ctx, r, currency)
	default:
		return nil, unsupportedFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("reporte ventas: %w", err)
	}
	return uc.finish(ctx, "reporte_ventas", format, now, data)
}

// Complete reporte general en PDF.
func (uc *ReportFileUseCase) Complete(ctx context.Context) (*ReportFile, error) {
	now := uc.now()
	desde, hasta := defaultPeriod(now, time.Time{}, time.Time{})

	shop, err := uc.config.ShopInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte completo: configuración: %w", err)
	}
	summary, err := uc.reports.SalesSummary(ctx, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reporte completo: resumen: %w", err)
	}
	top, err := uc.reports.TopProducts(ctx, topProductsWindow, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte completo: más vendidos: %w", err)
	}
	low, err := uc.products.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte completo: stock bajo: %w", err)
	}

	data, err := uc.pdf.CompletePDF(ctx, CompleteReport{
		GeneratedAt: now,
		Shop:        shop,
		Desde:       desde,
		Hasta:       hasta,
		Summary:     summary,
		TopProducts: top,
		LowStock:    low,
	}, uc.config.CurrencyAccessor(ctx))
	if err != nil {
		return nil, fmt.Errorf("reporte completo: %w", err)
	}
	return uc.finish(ctx, "reporte_completo", FormatPDF, now, data)
}

// finish nombra el archivo y, si hay archivo configurado, guarda una copia.
// Un fallo al archivar no invalida el reporte ya generado.
func (uc *ReportFileUseCase) finish(ctx context.Context, prefix string, format ReportFormat, at time.Time, data []byte) (*ReportFile, error) {
	out := &ReportFile{
		Filename:    ReportFilename(prefix, format, at),
		ContentType: contentType(format),
		Data:        data,
	}
	if uc.archive == nil {
		return out, nil
	}
	path, err := uc.archive.Save(ctx, out.Filename, data)
	if err != nil {
		uc.log.Warn().Err(err).Str("archivo", out.Filename).Msg("no se pudo archivar el reporte")
		return out, nil
	}
	out.Path = path
	return out, nil
}

// ReportFilename prefijo_YYYYMMDD_HHMMSS.ext
func ReportFilename(prefix string, format ReportFormat, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, at.Format("20060102_150405"), format)
}

func contentType(format ReportFormat) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// defaultPeriod completa las fechas vacías. El filtro por DATE(fecha) es
// inclusivo, así que la ventana incluye hoy y los 29 días anteriores.
func defaultPeriod(now, desde, hasta time.Time) (time.Time, time.Time) {
	if hasta.IsZero() {
		hasta = now
	}
	if desde.IsZero() {
		desde = hasta.AddDate(0, 0, -(defaultReportDays - 1))
	}
	return desde, hasta
}

func unsupportedFormat(format ReportFormat) error {
	return entity.ErrFieldInvalid("formato", fmt.Sprintf("%q no soportado", format))
}
