package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

const defaultFrequentLimit = 10

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.repo.List(ctx)
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *CustomerUseCase) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, c)
}

func (uc *CustomerUseCase) Update(ctx context.Context, c *entity.Customer) (int64, error) {
	if c.ID <= 0 {
		return 0, entity.ErrFieldRequired("id")
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Update(ctx, c)
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	return uc.repo.Delete(ctx, id)
}

// Frequent clientes con más compras; limit <= 0 usa 10. desde/hasta son opcionales.
func (uc *CustomerUseCase) Frequent(ctx context.Context, limit int, desde, hasta *time.Time) ([]entity.FrequentCustomer, error) {
	if limit <= 0 {
		limit = defaultFrequentLimit
	}
	if desde != nil && hasta != nil {
		if err := validateRange(*desde, *hasta); err != nil {
			return nil, err
		}
	}
	return uc.repo.Frequent(ctx, limit, desde, hasta)
}
