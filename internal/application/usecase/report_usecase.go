package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

// Ventanas de los reportes, relativas al momento de la consulta.
const (
	salesByDayWindow  = 7
	topProductsWindow = 30
	topProductsLimit  = 10
)

// ReportUseCase datos para gráficos y para el dashboard.
type ReportUseCase struct {
	reports  repository.ReportRepository
	products repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports repository.ReportRepository, products repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, products: products}
}

// SalesByDay total por día de los últimos 7 días, ordenado por día.
func (uc *ReportUseCase) SalesByDay(ctx context.Context) ([]entity.DailySales, error) {
	return uc.reports.SalesByDay(ctx, salesByDayWindow)
}

// TopProducts 10 productos con más unidades vendidas en los últimos 30 días.
func (uc *ReportUseCase) TopProducts(ctx context.Context) ([]entity.TopProduct, error) {
	return uc.reports.TopProducts(ctx, topProductsWindow, topProductsLimit)
}

// ProductsByCategory cantidad de productos por categoría, de mayor a menor.
func (uc *ReportUseCase) ProductsByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	return uc.reports.ProductsByCategory(ctx)
}

// SalesSummary cantidad, total y promedio en [desde, hasta].
func (uc *ReportUseCase) SalesSummary(ctx context.Context, desde, hasta time.Time) (entity.SalesSummary, error) {
	if err := validateRange(desde, hasta); err != nil {
		return entity.SalesSummary{}, err
	}
	return uc.reports.SalesSummary(ctx, desde, hasta)
}

// Dashboard indicadores de la pantalla principal. Las consultas son
// independientes y se lanzan en paralelo; cada una usa su propia conexión.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	type intResult struct {
		n   int
		err error
	}
	type decResult struct {
		d   decimal.Decimal
		err error
	}
	type lowResult struct {
		list []*entity.Product
		err  error
	}

	productsCh := make(chan intResult, 1)
	customersCh := make(chan intResult, 1)
	todayCh := make(chan decResult, 1)
	lowCh := make(chan lowResult, 1)

	go func() {
		n, err := uc.reports.CountProducts(ctx)
		productsCh <- intResult{n, err}
	}()
	go func() {
		n, err := uc.reports.CountCustomers(ctx)
		customersCh <- intResult{n, err}
	}()
	go func() {
		d, err := uc.reports.SalesToday(ctx)
		todayCh <- decResult{d, err}
	}()
	go func() {
		list, err := uc.products.ListLowStock(ctx)
		lowCh <- lowResult{list, err}
	}()

	products := <-productsCh
	customers := <-customersCh
	today := <-todayCh
	low := <-lowCh

	// ── Manejo de errores ─────────────────────────────────────────────────────
	switch {
	case products.err != nil:
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	case customers.err != nil:
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	case today.err != nil:
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	case low.err != nil:
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	return &entity.Dashboard{
		TotalProductos: products.n,
		VentasHoy:      today.d,
		TotalClientes:  customers.n,
		StockBajo:      len(low.list),
		Notificaciones: LowStockNotifications(low.list),
	}, nil
}

// LowStockNotifications un aviso por producto en o bajo su mínimo.
func LowStockNotifications(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		if p.Stock == 0 {
			out = append(out, fmt.Sprintf("%s está agotado (mínimo %d)", p.Nombre, p.StockMinimo))
			continue
		}
		out = append(out, fmt.Sprintf("Stock bajo: %s (%d de %d)", p.Nombre, p.Stock, p.StockMinimo))
	}
	return out
}
