package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar un producto.
type ProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,max=100"`
	Categoria   string          `json:"categoria" validate:"required,max=50"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
	Descripcion *string         `json:"descripcion"`
}

// ToEntity convierte la entrada en entidad (ID = 0 para alta).
func (r ProductRequest) ToEntity(id int64) *entity.Product {
	return &entity.Product{
		ID:          id,
		Nombre:      r.Nombre,
		Categoria:   r.Categoria,
		Precio:      r.Precio,
		Stock:       r.Stock,
		StockMinimo: r.StockMinimo,
		Descripcion: r.Descripcion,
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
	Descripcion *string         `json:"descripcion"`
	StockBajo   bool            `json:"stock_bajo"`
}

// StockResponse stock disponible de un producto.
type StockResponse struct {
	ProductoID int64 `json:"producto_id"`
	Stock      int   `json:"stock"`
}

// NewProductResponse convierte la entidad.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Precio:      p.Precio,
		Stock:       p.Stock,
		StockMinimo: p.StockMinimo,
		Descripcion: p.Descripcion,
		StockBajo:   p.IsLowStock(),
	}
}

// NewProductList convierte un listado de entidades.
func NewProductList(list []*entity.Product) ListResponse[ProductResponse] {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, NewProductResponse(p))
	}
	return NewList(items)
}
