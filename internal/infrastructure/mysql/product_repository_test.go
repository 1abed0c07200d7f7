package mysql_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
)

var productCols = []string{"id", "nombre", "categoria", "precio", "stock", "stock_minimo", "descripcion"}

func TestProductRepo_ListOrdersByName(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("FROM productos ORDER BY nombre")).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(int64(1), "Americano", "Café", "8.50", int64(40), int64(10), nil).
			AddRow(int64(2), "Brownie", "Postres", "6.00", int64(3), int64(5), "Chocolate"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Americano", list[0].Nombre)
	assert.False(t, list[0].IsLowStock())
	assert.True(t, list[1].IsLowStock())
}

func TestProductRepo_SearchUsesPartialMatch(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE nombre LIKE ? OR categoria LIKE ?")).
		WithArgs("%caf%", "%caf%").
		WillReturnRows(sqlmock.NewRows(productCols))

	list, err := repo.Search(context.Background(), "caf")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductRepo_GetByIDNotFound(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("FROM productos WHERE id = ?")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(productCols))

	p, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_StockAvailable(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM productos WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(int64(12)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM productos WHERE id = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}))

	stock, err := repo.StockAvailable(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, 12, *stock)

	stock, err = repo.StockAvailable(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, stock, "producto inexistente no es error")
}

func TestProductRepo_CreateReturnsID(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)
	p := &entity.Product{Nombre: "Latte", Categoria: "Café", Precio: decimal.RequireFromString("9.50"), Stock: 20, StockMinimo: 5}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO productos")).
		WithArgs("Latte", "Café", p.Precio, 20, 5, nil).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	id, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

// Lo que se inserta con Create vuelve igual por GetByID con el id devuelto,
// aunque el driver entregue DECIMAL y VARCHAR como []byte.
func TestProductRepo_CreateThenGetByIDRoundTrip(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)
	desc := "Doble shot"
	in := &entity.Product{
		Nombre: "Latte", Categoria: "Café", Precio: decimal.RequireFromString("9.50"),
		Stock: 20, StockMinimo: 5, Descripcion: &desc,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO productos")).
		WithArgs("Latte", "Café", in.Precio, 20, 5, desc).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("FROM productos WHERE id = ?")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(int64(11), []byte("Latte"), []byte("Café"), []byte("9.50"), int64(20), int64(5), []byte(desc)))

	id, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	out, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, id, out.ID)
	assert.Equal(t, in.Nombre, out.Nombre)
	assert.Equal(t, in.Categoria, out.Categoria)
	assert.True(t, in.Precio.Equal(out.Precio), "precio %s != %s", in.Precio, out.Precio)
	assert.Equal(t, in.Stock, out.Stock)
	assert.Equal(t, in.StockMinimo, out.StockMinimo)
	assert.Equal(t, in.Descripcion, out.Descripcion)
}

// El filtro de stock bajo es inclusivo: stock igual al mínimo cuenta.
func TestProductRepo_ListLowStockBoundary(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("FROM productos WHERE stock <= stock_minimo ORDER BY nombre")).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(int64(1), "Brownie", "Postres", "6.00", int64(5), int64(10), nil).
			AddRow(int64(2), "Latte", "Café", "9.50", int64(10), int64(10), nil))

	list, err := repo.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, p := range list {
		assert.True(t, p.IsLowStock(), "%s con stock %d", p.Nombre, p.Stock)
	}

	casos := []struct {
		stock int64
		bajo  bool
	}{
		{5, true},
		{10, true},
		{11, false},
	}
	for _, c := range casos {
		p, err := mysql.ProductFromRow(mysql.Row{int64(3), "Té", "Bebidas", []byte("4.00"), c.stock, int64(10)})
		require.NoError(t, err)
		assert.Equal(t, c.bajo, p.IsLowStock(), "stock %d, mínimo 10", c.stock)
	}
}

func TestProductRepo_DeleteReferencedIsConflict(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM productos WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnError(&mysqldrv.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductRepo_DecrementStockGuardsAvailability(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE productos SET stock = stock - ? WHERE id = ? AND stock >= ?")).
		WithArgs(3, int64(7), 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.DecrementStock(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Zero(t, n, "sin stock suficiente no se afecta ninguna fila")
}

func TestProductRepo_ListCategoriesSkipsEmpty(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewProductRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT categoria FROM productos")).
		WillReturnRows(sqlmock.NewRows([]string{"categoria"}).AddRow("Café").AddRow("").AddRow("Postres"))

	cats, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Café", "Postres"}, cats)
}
