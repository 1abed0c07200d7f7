package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// CustomerRequest alta o edición de cliente.
type CustomerRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// FrequentCustomerResponse cliente con sus compras.
type FrequentCustomerResponse struct {
	CustomerResponse
	Compras      int             `json:"compras"`
	TotalGastado decimal.Decimal `json:"total_gastado"`
}

func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Nombre: c.Nombre, Email: c.Email, Telefono: c.Telefono}
}

func NewCustomerList(list []*entity.Customer) ListResponse[CustomerResponse] {
	items := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, NewCustomerResponse(c))
	}
	return NewList(items)
}

func NewFrequentCustomerList(list []entity.FrequentCustomer) ListResponse[FrequentCustomerResponse] {
	items := make([]FrequentCustomerResponse, 0, len(list))
	for i := range list {
		items = append(items, FrequentCustomerResponse{
			CustomerResponse: NewCustomerResponse(&list[i].Customer),
			Compras:          list[i].Compras,
			TotalGastado:     list[i].TotalGastado,
		})
	}
	return NewList(items)
}
