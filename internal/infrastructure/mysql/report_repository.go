package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación (solo lectura).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByDay total por día de los últimos `days` días (relativo a CURDATE()).
func (r *ReportRepo) SalesByDay(ctx context.Context, days int) ([]entity.DailySales, error) {
	query := `
		SELECT DATE(fecha) AS dia, SUM(total) AS total_ventas
		FROM ventas
		WHERE fecha >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		GROUP BY DATE(fecha)
		ORDER BY dia`
	res, err := r.q.Execute(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	out := make([]entity.DailySales, 0, len(res.Rows))
	for _, row := range res.Rows {
		if err := requireLen(row, 2, "ventas por día"); err != nil {
			return nil, err
		}
		total, err := asDecimal(row[1], "total_ventas")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.DailySales{Dia: dayString(row[0]), Total: total})
	}
	return out, nil
}

// TopProducts productos más vendidos (unidades) en los últimos `days` días.
func (r *ReportRepo) TopProducts(ctx context.Context, days, limit int) ([]entity.TopProduct, error) {
	query := `
		SELECT p.nombre, SUM(dv.cantidad) AS total_vendido
		FROM detalles_venta dv
		JOIN productos p ON dv.producto_id = p.id
		JOIN ventas v ON dv.venta_id = v.id
		WHERE v.fecha >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		GROUP BY p.id, p.nombre
		ORDER BY total_vendido DESC
		LIMIT ?`
	res, err := r.q.Execute(ctx, query, days, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	out := make([]entity.TopProduct, 0, len(res.Rows))
	for _, row := range res.Rows {
		if err := requireLen(row, 2, "productos más vendidos"); err != nil {
			return nil, err
		}
		qty, err := asInt(row[1], "total_vendido")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.TopProduct{Nombre: asString(row[0]), Cantidad: qty})
	}
	return out, nil
}

// ProductsByCategory cantidad de productos por categoría, de mayor a menor.
func (r *ReportRepo) ProductsByCategory(ctx context.Context) ([]entity.CategoryCount, error) {
	query := `
		SELECT categoria, COUNT(*) AS total
		FROM productos
		GROUP BY categoria
		ORDER BY total DESC`
	res, err := r.q.Execute(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products by category: %w", err)
	}
	out := make([]entity.CategoryCount, 0, len(res.Rows))
	for _, row := range res.Rows {
		if err := requireLen(row, 2, "productos por categoría"); err != nil {
			return nil, err
		}
		n, err := asInt(row[1], "total")
		if err != nil {
			return nil, err
		}
		out = append(out, entity.CategoryCount{Categoria: asString(row[0]), Cantidad: n})
	}
	return out, nil
}

// SalesSummary cantidad, total y promedio de ventas en [desde, hasta].
// Usa COALESCE para devolver cero si no hay ventas en el período.
func (r *ReportRepo) SalesSummary(ctx context.Context, desde, hasta time.Time) (entity.SalesSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(AVG(total), 0)
		FROM ventas
		WHERE DATE(fecha) BETWEEN ? AND ?`
	res, err := r.q.Execute(ctx, query, desde.Format(time.DateOnly), hasta.Format(time.DateOnly))
	if err != nil {
		return entity.SalesSummary{}, fmt.Errorf("sales summary: %w", err)
	}
	var s entity.SalesSummary
	if len(res.Rows) == 0 {
		return s, nil
	}
	row := res.Rows[0]
	if err := requireLen(row, 3, "resumen de ventas"); err != nil {
		return s, err
	}
	if s.Cantidad, err = asInt(row[0], "cantidad"); err != nil {
		return s, err
	}
	if s.Total, err = asDecimal(row[1], "total"); err != nil {
		return s, err
	}
	if s.Promedio, err = asDecimal(row[2], "promedio"); err != nil {
		return s, err
	}
	s.Promedio = s.Promedio.Round(2)
	return s, nil
}

// CountProducts total de productos del catálogo.
func (r *ReportRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, "productos")
}

// CountCustomers total de clientes registrados.
func (r *ReportRepo) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, "clientes")
}

// SalesToday suma de ventas del día actual.
func (r *ReportRepo) SalesToday(ctx context.Context) (decimal.Decimal, error) {
	res, err := r.q.Execute(ctx, `SELECT COALESCE(SUM(total), 0) FROM ventas WHERE DATE(fecha) = CURDATE()`)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales today: %w", err)
	}
	if len(res.Rows) == 0 {
		return decimal.Zero, nil
	}
	return asDecimal(res.Rows[0].at(0), "total")
}

// count la tabla viene de una lista fija interna, nunca de entrada del usuario.
func (r *ReportRepo) count(ctx context.Context, table string) (int, error) {
	res, err := r.q.Execute(ctx, `SELECT COUNT(*) FROM `+table)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	if len(res.Rows) == 0 {
		return 0, nil
	}
	return asInt(res.Rows[0].at(0), "count")
}

// dayString normaliza DATE(...) que puede llegar como time.Time o texto.
func dayString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.DateOnly)
	}
	s := asString(v)
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	return s
}
