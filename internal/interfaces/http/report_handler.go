package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
)

// ReportHandler gráficos, dashboard y reportes descargables.
type ReportHandler struct {
	reports *usecase.ReportUseCase
	files   *usecase.ReportFileUseCase
	config  *usecase.ConfigUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *usecase.ReportUseCase, files *usecase.ReportFileUseCase, config *usecase.ConfigUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, files: files, config: config}
}

// SalesByDay GET /api/reports/sales-by-day
func (h *ReportHandler) SalesByDay(c *fiber.Ctx) error {
	rows, err := h.reports.SalesByDay(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSalesByDayChart(rows))
}

// TopProducts GET /api/reports/top-products
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	rows, err := h.reports.TopProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewTopProductsChart(rows))
}

// ProductsByCategory GET /api/reports/products-by-category
func (h *ReportHandler) ProductsByCategory(c *fiber.Ctx) error {
	rows, err := h.reports.ProductsByCategory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCategoryChart(rows))
}

// Summary godoc
// @Summary      Resumen de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "YYYY-MM-DD (por defecto hace 30 días)"
// @Param        hasta  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200    {object}  dto.SalesSummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	desde, hasta, ok := dateRange(c, 30)
	if !ok {
		return badRequest(c, "INVALID_DATE", "las fechas deben tener formato YYYY-MM-DD")
	}
	s, err := h.reports.SalesSummary(c.UserContext(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SalesSummaryResponse{
		Desde:    desde.Format(time.DateOnly),
		Hasta:    hasta.Format(time.DateOnly),
		Cantidad: s.Cantidad,
		Total:    s.Total,
		Promedio: s.Promedio,
	})
}

// Dashboard godoc
// @Summary      Indicadores del dashboard
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	d, err := h.reports.Dashboard(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDashboardResponse(d, h.config.CurrencySymbol(ctx)))
}

// PDF godoc
// @Summary      Descargar reporte PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind   path   string  true   "inventory | sales | complete"
// @Param        desde  query  string  false  "YYYY-MM-DD (solo sales)"
// @Param        hasta  query  string  false  "YYYY-MM-DD (solo sales)"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf/{kind} [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var (
		file *usecase.ReportFile
		err  error
	)
	switch c.Params("kind") {
	case "inventory":
		file, err = h.files.Inventory(ctx, usecase.FormatPDF)
	case "sales":
		desde, hasta, ok := dateRange(c, 30)
		if !ok {
			return badRequest(c, "INVALID_DATE", "las fechas deben tener formato YYYY-MM-DD")
		}
		file, err = h.files.Sales(ctx, usecase.FormatPDF, desde, hasta)
	case "complete":
		file, err = h.files.Complete(ctx)
	default:
		return notFound(c, "reporte desconocido")
	}
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// XLSX GET /api/reports/xlsx/{inventory|sales}
func (h *ReportHandler) XLSX(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var (
		file *usecase.ReportFile
		err  error
	)
	switch c.Params("kind") {
	case "inventory":
		file, err = h.files.Inventory(ctx, usecase.FormatXLSX)
	case "sales":
		desde, hasta, ok := dateRange(c, 30)
		if !ok {
			return badRequest(c, "INVALID_DATE", "las fechas deben tener formato YYYY-MM-DD")
		}
		file, err = h.files.Sales(ctx, usecase.FormatXLSX, desde, hasta)
	default:
		return notFound(c, "reporte desconocido")
	}
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, f *usecase.ReportFile) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Filename+`"`)
	if f.Path != "" {
		c.Set("X-Report-Path", f.Path)
	}
	return c.Send(f.Data)
}
