package repository

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Un producto inexistente se devuelve como (nil, nil).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Search(ctx context.Context, text string) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (int64, error)
	Update(ctx context.Context, product *entity.Product) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	StockAvailable(ctx context.Context, id int64) (*int, error)
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	// DecrementStock descuenta qty solo si alcanza; devuelve filas afectadas (0 = sin stock suficiente).
	DecrementStock(ctx context.Context, id int64, qty int) (int64, error)
}
