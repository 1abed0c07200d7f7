package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// SaleItemRequest línea solicitada. Sin precio se usa el precio actual del producto.
type SaleItemRequest struct {
	ProductoID     int64            `json:"producto_id"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// RecordSaleRequest registro completo de una venta (cabecera + líneas + stock).
type RecordSaleRequest struct {
	Cliente      string            `json:"cliente"`
	ClienteRefID *int64            `json:"cliente_ref_id,omitempty"`
	Items        []SaleItemRequest `json:"items"`
}

// SaleResponse cabecera de venta.
type SaleResponse struct {
	ID           int64           `json:"id"`
	Cliente      string          `json:"cliente"`
	ClienteRefID *int64          `json:"cliente_ref_id,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Fecha        time.Time       `json:"fecha"`
	Vendedor     string          `json:"vendedor"`
}

// SaleLineResponse línea de venta.
type SaleLineResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse venta con sus líneas.
type SaleDetailResponse struct {
	SaleResponse
	Items []SaleLineResponse `json:"items"`
}

// NewSaleResponse convierte la entidad.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		Cliente:      s.Cliente,
		ClienteRefID: s.ClienteRefID,
		Total:        s.Total,
		Fecha:        s.Fecha,
		Vendedor:     s.VendedorOSistema(),
	}
}

// NewSaleList convierte un listado de ventas.
func NewSaleList(list []*entity.Sale) ListResponse[SaleResponse] {
	items := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, NewSaleResponse(s))
	}
	return NewList(items)
}

// NewSaleDetailResponse convierte cabecera más líneas.
func NewSaleDetailResponse(d *entity.SaleDetail) SaleDetailResponse {
	out := SaleDetailResponse{
		SaleResponse: NewSaleResponse(&d.Sale),
		Items:        make([]SaleLineResponse, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, SaleLineResponse{
			ID:             it.ID,
			ProductoID:     it.ProductoID,
			Producto:       it.Producto,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		})
	}
	return out
}
