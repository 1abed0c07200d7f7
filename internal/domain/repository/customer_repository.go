package repository

import (
	"context"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (int64, error)
	Update(ctx context.Context, customer *entity.Customer) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	// Frequent ranking por número de compras; desde/hasta nil = sin filtro de fechas.
	Frequent(ctx context.Context, limit int, desde, hasta *time.Time) ([]entity.FrequentCustomer, error)
}
