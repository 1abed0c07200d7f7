package mysql

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, categoria, precio, stock, stock_minimo, descripcion`

// ProductRepo implementación de ProductRepository sobre MySQL (usable con Gateway o dentro de InTx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todo el catálogo ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	res, err := r.q.Execute(ctx, `SELECT `+productColumns+` FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return mapAll(res.Rows, ProductFromRow)
}

// Search coincidencia parcial en nombre o categoría.
func (r *ProductRepo) Search(ctx context.Context, text string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos
		WHERE nombre LIKE ? OR categoria LIKE ?
		ORDER BY nombre`
	res, err := r.q.Execute(ctx, query, like(text), like(text))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return mapAll(res.Rows, ProductFromRow)
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	res, err := r.q.Execute(ctx, `SELECT `+productColumns+` FROM productos WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return ProductFromRow(res.Rows[0])
}

// Create persiste un nuevo producto y devuelve su id.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		INSERT INTO productos (nombre, categoria, precio, stock, stock_minimo, descripcion)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.q.Execute(ctx, query, p.Nombre, p.Categoria, p.Precio, p.Stock, p.StockMinimo, p.Descripcion)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return res.LastInsertID, nil
}

// Update reemplaza todas las columnas del producto. Devuelve filas afectadas.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		UPDATE productos
		SET nombre = ?, categoria = ?, precio = ?, stock = ?, stock_minimo = ?, descripcion = ?
		WHERE id = ?`
	res, err := r.q.Execute(ctx, query, p.Nombre, p.Categoria, p.Precio, p.Stock, p.StockMinimo, p.Descripcion, p.ID)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update product: %w", err)
	}
	return res.RowsAffected, nil
}

// Delete borra el producto. Si tiene ventas asociadas devuelve domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.Execute(ctx, `DELETE FROM productos WHERE id = ?`, id)
	if err != nil {
		if isRowReferenced(err) {
			return 0, fmt.Errorf("%w: el producto tiene ventas registradas", domain.ErrConflict)
		}
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return res.RowsAffected, nil
}

// StockAvailable stock actual; nil si el producto no existe.
func (r *ProductRepo) StockAvailable(ctx context.Context, id int64) (*int, error) {
	res, err := r.q.Execute(ctx, `SELECT stock FROM productos WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("stock product: %w", err)
	}
	if len(res.Rows) == 0 || len(res.Rows[0]) == 0 {
		return nil, nil
	}
	stock, err := asInt(res.Rows[0][0], "stock")
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// ListLowStock productos con stock <= stock_minimo.
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE stock <= stock_minimo ORDER BY nombre`
	res, err := r.q.Execute(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return mapAll(res.Rows, ProductFromRow)
}

// ListCategories categorías distintas en uso.
func (r *ProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	res, err := r.q.Execute(ctx, `SELECT DISTINCT categoria FROM productos ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		if c := asString(row.at(0)); c != "" {
			out = append(out, c)
		}
	}
	return out, nil
}

// DecrementStock descuenta qty solo si el stock alcanza (guarda en el WHERE).
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int) (int64, error) {
	res, err := r.q.Execute(ctx,
		`UPDATE productos SET stock = stock - ? WHERE id = ? AND stock >= ?`,
		qty, id, qty,
	)
	if err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	return res.RowsAffected, nil
}
