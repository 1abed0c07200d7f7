package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la cafetería (tabla productos).
// Categoria es texto libre; la tabla categorias quedó como legado.
type Product struct {
	ID          int64
	Nombre      string
	Categoria   string
	Precio      decimal.Decimal // > 0
	Stock       int             // >= 0
	StockMinimo int             // >= 0
	Descripcion *string         // NULL permitido
}

// IsLowStock indica si el stock llegó al mínimo (inclusive).
func (p Product) IsLowStock() bool {
	return p.Stock <= p.StockMinimo
}

// Validate revisa las restricciones de columna antes de escribir.
func (p Product) Validate() error {
	switch {
	case strings.TrimSpace(p.Nombre) == "":
		return ErrFieldRequired("nombre")
	case strings.TrimSpace(p.Categoria) == "":
		return ErrFieldRequired("categoria")
	case !p.Precio.IsPositive():
		return ErrFieldInvalid("precio", "debe ser mayor que cero")
	case p.Stock < 0:
		return ErrFieldInvalid("stock", "no puede ser negativo")
	case p.StockMinimo < 0:
		return ErrFieldInvalid("stock_minimo", "no puede ser negativo")
	}
	return nil
}
