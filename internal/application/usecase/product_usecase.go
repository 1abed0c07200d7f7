package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. Cada operación es una sola sentencia,
// sin control de concurrencia optimista.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List catálogo completo ordenado por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.List(ctx)
}

// Search coincidencia parcial (sin distinguir mayúsculas) en nombre o categoría.
// Texto vacío equivale a List.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]*entity.Product, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return uc.repo.List(ctx)
	}
	return uc.repo.Search(ctx, text)
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create valida y persiste; devuelve el id generado.
func (uc *ProductUseCase) Create(ctx context.Context, p *entity.Product) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, p)
}

// Update reemplaza la fila completa. 0 filas afectadas = no existe o sin cambios.
func (uc *ProductUseCase) Update(ctx context.Context, p *entity.Product) (int64, error) {
	if p.ID <= 0 {
		return 0, entity.ErrFieldRequired("id")
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Update(ctx, p)
}

// Delete borra por id y devuelve filas afectadas.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (int64, error) {
	return uc.repo.Delete(ctx, id)
}

// StockAvailable stock actual; nil si el producto no existe.
func (uc *ProductUseCase) StockAvailable(ctx context.Context, id int64) (*int, error) {
	return uc.repo.StockAvailable(ctx, id)
}

// ListLowStock productos en o bajo su stock mínimo.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.ListLowStock(ctx)
}

// ListCategories categorías en uso.
func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.repo.ListCategories(ctx)
}
