package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List clientes ordenados por nombre.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	res, err := r.q.Execute(ctx, `SELECT id, nombre, email, telefono FROM clientes ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return mapAll(res.Rows, CustomerFromRow)
}

// GetByID obtiene un cliente; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	res, err := r.q.Execute(ctx, `SELECT id, nombre, email, telefono FROM clientes WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return CustomerFromRow(res.Rows[0])
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	res, err := r.q.Execute(ctx,
		`INSERT INTO clientes (nombre, email, telefono) VALUES (?, ?, ?)`,
		c.Nombre, c.Email, c.Telefono,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return res.LastInsertID, nil
}

// Update reemplaza los datos del cliente. No modifica el nombre copiado en ventas anteriores.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) (int64, error) {
	res, err := r.q.Execute(ctx,
		`UPDATE clientes SET nombre = ?, email = ?, telefono = ? WHERE id = ?`,
		c.Nombre, c.Email, c.Telefono, c.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update customer: %w", err)
	}
	return res.RowsAffected, nil
}

// Delete borra el cliente; las ventas que lo referencian quedan con cliente_ref_id NULL.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.Execute(ctx, `DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	return res.RowsAffected, nil
}

// Frequent ranking de clientes por número de compras y total gastado.
func (r *CustomerRepo) Frequent(ctx context.Context, limit int, desde, hasta *time.Time) ([]entity.FrequentCustomer, error) {
	var (
		where []string
		args  []any
	)
	if desde != nil {
		where = append(where, "DATE(v.fecha) >= ?")
		args = append(args, desde.Format(time.DateOnly))
	}
	if hasta != nil {
		where = append(where, "DATE(v.fecha) <= ?")
		args = append(args, hasta.Format(time.DateOnly))
	}
	filter := ""
	if len(where) > 0 {
		filter = "WHERE " + strings.Join(where, " AND ")
	}
	query := `
		SELECT COALESCE(c.id, 0), v.cliente, c.email, c.telefono, COUNT(v.id) AS compras, SUM(v.total) AS total_gastado
		FROM ventas v
		LEFT JOIN clientes c ON c.nombre = v.cliente
		` + filter + `
		GROUP BY v.cliente, c.id, c.email, c.telefono
		ORDER BY compras DESC, total_gastado DESC
		LIMIT ?`
	args = append(args, limit)

	res, err := r.q.Execute(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("frequent customers: %w", err)
	}
	out := make([]entity.FrequentCustomer, 0, len(res.Rows))
	for _, row := range res.Rows {
		c, err := CustomerFromRow(row)
		if err != nil {
			return nil, err
		}
		fc := entity.FrequentCustomer{Customer: *c}
		if fc.Compras, err = asInt(row.at(4), "compras"); err != nil {
			return nil, err
		}
		if fc.TotalGastado, err = asDecimal(row.at(5), "total_gastado"); err != nil {
			return nil, err
		}
		out = append(out, fc)
	}
	return out, nil
}
