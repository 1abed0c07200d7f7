package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/pkg/money"
)

// ── Gráficos ──────────────────────────────────────────────────────────────────

// SeriesPoint punto (etiqueta, valor) para gráficos de barras o líneas.
type SeriesPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ChartResponse serie lista para graficar.
type ChartResponse struct {
	Title  string        `json:"title"`
	Points []SeriesPoint `json:"points"`
}

func NewSalesByDayChart(rows []entity.DailySales) ChartResponse {
	out := ChartResponse{Title: "Ventas por día (últimos 7 días)", Points: make([]SeriesPoint, 0, len(rows))}
	for _, r := range rows {
		out.Points = append(out.Points, SeriesPoint{Label: r.Dia, Value: r.Total})
	}
	return out
}

func NewTopProductsChart(rows []entity.TopProduct) ChartResponse {
	out := ChartResponse{Title: "Productos más vendidos (últimos 30 días)", Points: make([]SeriesPoint, 0, len(rows))}
	for _, r := range rows {
		out.Points = append(out.Points, SeriesPoint{Label: r.Nombre, Value: decimal.NewFromInt(int64(r.Cantidad))})
	}
	return out
}

func NewCategoryChart(rows []entity.CategoryCount) ChartResponse {
	out := ChartResponse{Title: "Productos por categoría", Points: make([]SeriesPoint, 0, len(rows))}
	for _, r := range rows {
		out.Points = append(out.Points, SeriesPoint{Label: r.Categoria, Value: decimal.NewFromInt(int64(r.Cantidad))})
	}
	return out
}

// ── Resumen y dashboard ───────────────────────────────────────────────────────

// SalesSummaryResponse agregado de ventas en un rango.
type SalesSummaryResponse struct {
	Desde    string          `json:"desde"`
	Hasta    string          `json:"hasta"`
	Cantidad int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
	Promedio decimal.Decimal `json:"promedio"`
}

// DashboardResponse indicadores de la pantalla principal.
type DashboardResponse struct {
	TotalProductos int             `json:"total_productos"`
	VentasHoy      decimal.Decimal `json:"ventas_hoy"`
	VentasHoyTexto string          `json:"ventas_hoy_texto"`
	TotalClientes  int             `json:"total_clientes"`
	StockBajo      int             `json:"stock_bajo"`
	Moneda         string          `json:"moneda"`
	Notificaciones []string        `json:"notificaciones"`
}

func NewDashboardResponse(d *entity.Dashboard, currency string) DashboardResponse {
	notes := d.Notificaciones
	if notes == nil {
		notes = []string{}
	}
	return DashboardResponse{
		TotalProductos: d.TotalProductos,
		VentasHoy:      d.VentasHoy,
		VentasHoyTexto: money.Format(currency, d.VentasHoy),
		TotalClientes:  d.TotalClientes,
		StockBajo:      d.StockBajo,
		Moneda:         currency,
		Notificaciones: notes,
	}
}
