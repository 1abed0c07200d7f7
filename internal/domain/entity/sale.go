package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClienteGeneral nombre usado cuando la venta no tiene cliente identificado.
const ClienteGeneral = "Cliente General"

// UsuarioSistema nombre mostrado cuando la venta no tiene usuario.
const UsuarioSistema = "Sistema"

// VendedorOSistema nombre para mostrar del vendedor.
func (s *Sale) VendedorOSistema() string {
	if s.Vendedor == "" {
		return UsuarioSistema
	}
	return s.Vendedor
}

// Sale representa la cabecera de una venta (tabla ventas).
// Cliente es una copia del nombre al momento de vender; ClienteRefID apunta
// opcionalmente a clientes y queda en NULL si el cliente se elimina.
type Sale struct {
	ID           int64
	Cliente      string
	ClienteRefID *int64
	Total        decimal.Decimal
	Fecha        time.Time
	UsuarioID    *int64
	Vendedor     string // nombre del usuario (JOIN); vacío si no hay
}

// SaleLineItem representa una línea de detalle (tabla detalles_venta).
type SaleLineItem struct {
	ID             int64
	VentaID        int64
	ProductoID     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal // precio copiado al momento de vender
	Subtotal       decimal.Decimal
	Producto       string // nombre del producto (JOIN), vacío si no se pidió
}

// LineSubtotal calcula cantidad × precio unitario.
func LineSubtotal(qty int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// SaleDetail cabecera más sus líneas.
type SaleDetail struct {
	Sale  Sale
	Items []SaleLineItem
}
