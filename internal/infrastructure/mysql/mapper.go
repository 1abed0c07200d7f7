package mysql

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// Los mappers convierten filas posicionales en entidades. El orden de columnas
// de cada SELECT del paquete debe coincidir con el documentado en cada función.
// Las columnas finales opcionales pueden faltar (quedan en su valor cero).

// UserFromRow (id, username, password, nombre, rol, [fecha_creacion]).
func UserFromRow(r Row) (*entity.User, error) {
	if err := requireLen(r, 5, "usuario"); err != nil {
		return nil, err
	}
	id, err := asInt64(r[0], "id")
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:           id,
		Username:     asString(r[1]),
		PasswordHash: asString(r[2]),
		Nombre:       asString(r[3]),
		Rol:          asString(r[4]),
	}
	if v := r.at(5); v != nil {
		t, err := asTime(v, "fecha_creacion")
		if err != nil {
			return nil, err
		}
		u.FechaCreacion = &t
	}
	return u, nil
}

// ProductFromRow (id, nombre, categoria, precio, stock, stock_minimo, [descripcion]).
func ProductFromRow(r Row) (*entity.Product, error) {
	if err := requireLen(r, 6, "producto"); err != nil {
		return nil, err
	}
	id, err := asInt64(r[0], "id")
	if err != nil {
		return nil, err
	}
	precio, err := asDecimal(r[3], "precio")
	if err != nil {
		return nil, err
	}
	stock, err := asInt(r[4], "stock")
	if err != nil {
		return nil, err
	}
	minimo, err := asInt(r[5], "stock_minimo")
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:          id,
		Nombre:      asString(r[1]),
		Categoria:   asString(r[2]),
		Precio:      precio,
		Stock:       stock,
		StockMinimo: minimo,
		Descripcion: asNullString(r.at(6)),
	}, nil
}

// SaleFromRow (id, cliente, total, fecha, [usuario_nombre], [cliente_ref_id], [usuario_id]).
// total NULL se toma como cero; usuario_nombre NULL deja Vendedor vacío.
func SaleFromRow(r Row) (*entity.Sale, error) {
	if err := requireLen(r, 4, "venta"); err != nil {
		return nil, err
	}
	id, err := asInt64(r[0], "id")
	if err != nil {
		return nil, err
	}
	total, err := asDecimal(r[2], "total")
	if err != nil {
		return nil, err
	}
	fecha, err := asTime(r[3], "fecha")
	if err != nil {
		return nil, err
	}
	s := &entity.Sale{
		ID:      id,
		Cliente: asString(r[1]),
		Total:   total,
		Fecha:   fecha,
	}
	s.Vendedor = asString(r.at(4))
	if s.ClienteRefID, err = asNullInt64(r.at(5), "cliente_ref_id"); err != nil {
		return nil, err
	}
	if s.UsuarioID, err = asNullInt64(r.at(6), "usuario_id"); err != nil {
		return nil, err
	}
	return s, nil
}

// SaleLineItemFromRow (id, venta_id, producto_id, cantidad, precio_unitario, subtotal, [producto_nombre]).
func SaleLineItemFromRow(r Row) (*entity.SaleLineItem, error) {
	if err := requireLen(r, 6, "detalle de venta"); err != nil {
		return nil, err
	}
	var (
		it  entity.SaleLineItem
		err error
	)
	if it.ID, err = asInt64(r[0], "id"); err != nil {
		return nil, err
	}
	if it.VentaID, err = asInt64(r[1], "venta_id"); err != nil {
		return nil, err
	}
	if it.ProductoID, err = asInt64(r[2], "producto_id"); err != nil {
		return nil, err
	}
	if it.Cantidad, err = asInt(r[3], "cantidad"); err != nil {
		return nil, err
	}
	if it.PrecioUnitario, err = asDecimal(r[4], "precio_unitario"); err != nil {
		return nil, err
	}
	if it.Subtotal, err = asDecimal(r[5], "subtotal"); err != nil {
		return nil, err
	}
	it.Producto = asString(r.at(6))
	return &it, nil
}

// CustomerFromRow (id, nombre, [email], [telefono]).
func CustomerFromRow(r Row) (*entity.Customer, error) {
	if err := requireLen(r, 2, "cliente"); err != nil {
		return nil, err
	}
	id, err := asInt64(r[0], "id")
	if err != nil {
		return nil, err
	}
	return &entity.Customer{
		ID:       id,
		Nombre:   asString(r[1]),
		Email:    asString(r.at(2)),
		Telefono: asString(r.at(3)),
	}, nil
}

// AuditFromRow (id, tabla, accion, descripcion, [usuario_id], [fecha]).
func AuditFromRow(r Row) (*entity.AuditEntry, error) {
	if err := requireLen(r, 4, "auditoria"); err != nil {
		return nil, err
	}
	id, err := asInt64(r[0], "id")
	if err != nil {
		return nil, err
	}
	a := &entity.AuditEntry{
		ID:          id,
		Tabla:       asString(r[1]),
		Accion:      asString(r[2]),
		Descripcion: asString(r[3]),
	}
	if a.UsuarioID, err = asNullInt64(r.at(4), "usuario_id"); err != nil {
		return nil, err
	}
	if v := r.at(5); v != nil {
		if a.Fecha, err = asTime(v, "fecha"); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ConfigFromRow (clave, valor, [descripcion]).
func ConfigFromRow(r Row) (*entity.ConfigEntry, error) {
	if err := requireLen(r, 2, "configuracion"); err != nil {
		return nil, err
	}
	return &entity.ConfigEntry{
		Clave:       asString(r[0]),
		Valor:       asString(r[1]),
		Descripcion: asNullString(r.at(2)),
	}, nil
}

// ── Coerción de valores del driver ───────────────────────────────────────────

// Int64At convierte la columna i a entero (0 si falta o es NULL).
func (r Row) Int64At(i int) (int64, error) {
	return asInt64(r.at(i), fmt.Sprintf("columna %d", i))
}

// StringAt columna i como texto ("" si falta o es NULL).
func (r Row) StringAt(i int) string {
	return asString(r.at(i))
}

// TimeAt columna i como fecha (cero si falta o es NULL).
func (r Row) TimeAt(i int) (time.Time, error) {
	return asTime(r.at(i), fmt.Sprintf("columna %d", i))
}

func (r Row) at(i int) any {
	if i < len(r) {
		return r[i]
	}
	return nil
}

func requireLen(r Row, n int, what string) error {
	if len(r) < n {
		return fmt.Errorf("%w: %s requiere %d columnas, llegaron %d", domain.ErrShortRow, what, n, len(r))
	}
	return nil
}

func coercionErr(col string, v any) error {
	return fmt.Errorf("%w: %s=%v (%T)", domain.ErrNumericCoercion, col, v, v)
}

func asDecimal(v any, col string) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return x, nil
	case int64:
		return decimal.NewFromInt(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return decimal.Zero, coercionErr(col, v)
		}
		return decimal.NewFromInt(int64(x)), nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case []byte:
		return parseDecimal(string(x), col)
	case string:
		return parseDecimal(x, col)
	default:
		return decimal.Zero, coercionErr(col, v)
	}
}

func parseDecimal(s, col string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, coercionErr(col, s)
	}
	return d, nil
}

func asInt64(v any, col string) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, coercionErr(col, v)
		}
		return int64(x), nil
	case []byte, string:
		s := strings.TrimSpace(asString(x))
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		// SUM() de enteros llega como DECIMAL ("12" o "12.0000")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, coercionErr(col, s)
		}
		return d.IntPart(), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, coercionErr(col, v)
		}
		return int64(x), nil
	default:
		d, err := asDecimal(v, col)
		if err != nil {
			return 0, err
		}
		return d.IntPart(), nil
	}
}

func asInt(v any, col string) (int, error) {
	n, err := asInt64(v, col)
	return int(n), err
}

func asNullInt64(v any, col string) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	n, err := asInt64(v, col)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.DateTime)
	default:
		return fmt.Sprint(x)
	}
}

func asNullString(v any) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

var timeLayouts = []string{time.DateTime, "2006-01-02 15:04:05.999999", time.DateOnly, time.RFC3339}

func asTime(v any, col string) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return x, nil
	case []byte, string:
		s := asString(x)
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("columna %s: fecha inválida %q", col, s)
	default:
		return time.Time{}, fmt.Errorf("columna %s: tipo de fecha inesperado %T", col, v)
	}
}
