package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// Columnas en el orden que espera SaleFromRow.
const saleSelect = `
	SELECT v.id, v.cliente, v.total, v.fecha, u.nombre, v.cliente_ref_id, v.usuario_id
	FROM ventas v
	LEFT JOIN usuarios u ON v.usuario_id = u.id`

// SaleRepo implementación de SaleRepository (usable con Gateway o dentro de InTx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) list(ctx context.Context, op, where string, args ...any) ([]*entity.Sale, error) {
	res, err := r.q.Execute(ctx, saleSelect+where+` ORDER BY v.fecha DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return mapAll(res.Rows, SaleFromRow)
}

// List todas las ventas, la más reciente primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, "list sales", "")
}

// Search por nombre de cliente o por número de venta (coincidencia parcial).
func (r *SaleRepo) Search(ctx context.Context, text string) ([]*entity.Sale, error) {
	return r.list(ctx, "search sales", ` WHERE v.cliente LIKE ? OR v.id LIKE ?`, like(text), like(text))
}

// FilterByDates ventas cuyo día calendario está en [desde, hasta].
func (r *SaleRepo) FilterByDates(ctx context.Context, desde, hasta time.Time) ([]*entity.Sale, error) {
	return r.list(ctx, "filter sales", ` WHERE DATE(v.fecha) BETWEEN ? AND ?`,
		desde.Format(time.DateOnly), hasta.Format(time.DateOnly))
}

// GetByID cabecera de una venta; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	res, err := r.q.Execute(ctx, saleSelect+` WHERE v.id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return SaleFromRow(res.Rows[0])
}

// Create inserta la cabecera. La fecha la asigna MySQL (DEFAULT CURRENT_TIMESTAMP).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) (int64, error) {
	res, err := r.q.Execute(ctx,
		`INSERT INTO ventas (cliente, cliente_ref_id, total, usuario_id) VALUES (?, ?, ?, ?)`,
		s.Cliente, s.ClienteRefID, s.Total, s.UsuarioID,
	)
	if err != nil {
		if isMissingReference(err) {
			return 0, fmt.Errorf("%w: usuario o cliente inexistente", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return res.LastInsertID, nil
}

// AddLineItem inserta una línea con subtotal = qty × unitPrice.
func (r *SaleRepo) AddLineItem(ctx context.Context, saleID, productID int64, qty int, unitPrice decimal.Decimal) (int64, error) {
	query := `
		INSERT INTO detalles_venta (venta_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.q.Execute(ctx, query, saleID, productID, qty, unitPrice, entity.LineSubtotal(qty, unitPrice))
	if err != nil {
		if isMissingReference(err) {
			return 0, fmt.Errorf("%w: venta o producto inexistente", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert sale line: %w", err)
	}
	return res.LastInsertID, nil
}

// ListLineItems líneas de una venta con el nombre actual del producto.
func (r *SaleRepo) ListLineItems(ctx context.Context, saleID int64) ([]*entity.SaleLineItem, error) {
	query := `
		SELECT d.id, d.venta_id, d.producto_id, d.cantidad, d.precio_unitario, d.subtotal, p.nombre
		FROM detalles_venta d
		LEFT JOIN productos p ON d.producto_id = p.id
		WHERE d.venta_id = ?
		ORDER BY d.id`
	res, err := r.q.Execute(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	return mapAll(res.Rows, SaleLineItemFromRow)
}
