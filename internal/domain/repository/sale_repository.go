package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	List(ctx context.Context) ([]*entity.Sale, error)
	Search(ctx context.Context, text string) ([]*entity.Sale, error)
	// FilterByDates incluye ambos extremos, comparando solo la parte de fecha.
	FilterByDates(ctx context.Context, desde, hasta time.Time) ([]*entity.Sale, error)
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	AddLineItem(ctx context.Context, saleID, productID int64, qty int, unitPrice decimal.Decimal) (int64, error)
	ListLineItems(ctx context.Context, saleID int64) ([]*entity.SaleLineItem, error)
}
