package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente registrado (tabla clientes).
type Customer struct {
	ID       int64
	Nombre   string
	Email    string
	Telefono string
}

// Validate exige al menos el nombre.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Nombre) == "" {
		return ErrFieldRequired("nombre")
	}
	return nil
}

// FrequentCustomer cliente con su número de compras y total gastado.
// Se agrupa por el nombre copiado en ventas; ID es 0 si el nombre no está en clientes.
type FrequentCustomer struct {
	Customer
	Compras      int
	TotalGastado decimal.Decimal
}
