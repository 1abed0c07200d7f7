package mysql_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
)

func TestProductFromRow(t *testing.T) {
	desc := "Tostado medio"
	p, err := mysql.ProductFromRow(mysql.Row{
		int64(3), []byte("Café Americano"), "Café", []byte("8.50"), int64(40), int64(10), []byte(desc),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "Café Americano", p.Nombre)
	assert.True(t, decimal.RequireFromString("8.5").Equal(p.Precio))
	assert.Equal(t, 40, p.Stock)
	assert.Equal(t, 10, p.StockMinimo)
	require.NotNil(t, p.Descripcion)
	assert.Equal(t, desc, *p.Descripcion)
}

func TestProductFromRow_OptionalDescription(t *testing.T) {
	p, err := mysql.ProductFromRow(mysql.Row{int64(1), "Té", "Bebidas", "5", int64(1), int64(2)})
	require.NoError(t, err)
	assert.Nil(t, p.Descripcion)
	assert.True(t, p.IsLowStock())
}

func TestProductFromRow_ShortRow(t *testing.T) {
	_, err := mysql.ProductFromRow(mysql.Row{int64(1), "Té", "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrShortRow)
}

func TestProductFromRow_NonNumericPrice(t *testing.T) {
	_, err := mysql.ProductFromRow(mysql.Row{int64(1), "Té", "Bebidas", "gratis", int64(1), int64(2)})
	assert.ErrorIs(t, err, domain.ErrNumericCoercion)
}

func TestSaleFromRow(t *testing.T) {
	fecha := time.Date(2024, 5, 10, 9, 30, 0, 0, time.Local)

	s, err := mysql.SaleFromRow(mysql.Row{int64(5), "Juan Pérez", []byte("23.50"), fecha, nil, int64(2), nil})
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", s.Cliente)
	assert.True(t, decimal.RequireFromString("23.5").Equal(s.Total))
	assert.Equal(t, fecha, s.Fecha)
	assert.Empty(t, s.Vendedor, "usuario NULL no se reemplaza en la entidad")
	assert.Equal(t, entity.UsuarioSistema, s.VendedorOSistema())
	require.NotNil(t, s.ClienteRefID)
	assert.Equal(t, int64(2), *s.ClienteRefID)
	assert.Nil(t, s.UsuarioID)
}

func TestSaleFromRow_NullTotalAndStringDate(t *testing.T) {
	s, err := mysql.SaleFromRow(mysql.Row{int64(1), "Cliente General", nil, []byte("2024-01-02 10:00:00")})
	require.NoError(t, err)
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, 2024, s.Fecha.Year())
	assert.Empty(t, s.Vendedor)
}

func TestSaleLineItemFromRow_SumAsDecimalString(t *testing.T) {
	it, err := mysql.SaleLineItemFromRow(mysql.Row{
		int64(1), int64(5), int64(3), []byte("2.0000"), "8.50", "17.00", "Café",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, it.Cantidad)
	assert.True(t, decimal.RequireFromString("17").Equal(it.Subtotal))
	assert.Equal(t, "Café", it.Producto)
}

func TestUserFromRow(t *testing.T) {
	u, err := mysql.UserFromRow(mysql.Row{int64(1), "admin", "abc", "Administrador", "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Rol)
	assert.Nil(t, u.FechaCreacion)

	_, err = mysql.UserFromRow(mysql.Row{int64(1), "admin"})
	assert.ErrorIs(t, err, domain.ErrShortRow)
}

func TestCustomerAndConfigFromRow(t *testing.T) {
	c, err := mysql.CustomerFromRow(mysql.Row{int64(4), "Ana", nil, "999"})
	require.NoError(t, err)
	assert.Equal(t, "", c.Email)
	assert.Equal(t, "999", c.Telefono)

	e, err := mysql.ConfigFromRow(mysql.Row{"moneda", "S/"})
	require.NoError(t, err)
	assert.Equal(t, "S/", e.Valor)
	assert.Nil(t, e.Descripcion)
}

func TestRowAccessors(t *testing.T) {
	r := mysql.Row{[]byte("12"), nil}
	n, err := r.Int64At(0)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	n, err = r.Int64At(5)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "", r.StringAt(1))

	_, err = mysql.Row{"doce"}.Int64At(0)
	assert.ErrorIs(t, err, domain.ErrNumericCoercion)
}

func TestProductFromRow_FractionalStock(t *testing.T) {
	_, err := mysql.ProductFromRow(mysql.Row{int64(1), "Té", "Bebidas", "4.00", float64(3.7), int64(2)})
	assert.ErrorIs(t, err, domain.ErrNumericCoercion, "3.7 no se trunca a 3")

	p, err := mysql.ProductFromRow(mysql.Row{int64(1), "Té", "Bebidas", "4.00", float64(3), int64(2)})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
}
