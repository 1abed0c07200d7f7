package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// ReportRepository consultas de solo lectura para gráficos y tableros.
// Las ventanas relativas (últimos N días) se calculan en MySQL con CURDATE().
type ReportRepository interface {
	SalesByDay(ctx context.Context, days int) ([]entity.DailySales, error)
	TopProducts(ctx context.Context, days, limit int) ([]entity.TopProduct, error)
	ProductsByCategory(ctx context.Context) ([]entity.CategoryCount, error)
	SalesSummary(ctx context.Context, desde, hasta time.Time) (entity.SalesSummary, error)

	// ── Métodos del Dashboard ─────────────────────────────────────────────────

	CountProducts(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	SalesToday(ctx context.Context) (decimal.Decimal, error)
}
