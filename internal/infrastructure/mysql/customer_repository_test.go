package mysql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
)

func TestCustomerRepo_FrequentWithDateRange(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewCustomerRepository(gw)

	desde := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	hasta := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE DATE(v.fecha) >= ? AND DATE(v.fecha) <= ?")).
		WithArgs("2024-01-01", "2024-01-31", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cliente", "email", "telefono", "compras", "total_gastado"}).
			AddRow(int64(2), "Ana", "ana@mail.com", nil, int64(4), "80.00").
			AddRow(int64(0), "Cliente General", nil, nil, int64(2), "10.50"))

	list, err := repo.Frequent(context.Background(), 5, &desde, &hasta)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Nombre)
	assert.Equal(t, 4, list[0].Compras)
	assert.Equal(t, "80", list[0].TotalGastado.String())
	assert.Zero(t, list[1].ID, "venta sin cliente registrado")
}

func TestCustomerRepo_FrequentWithoutFilter(t *testing.T) {
	gw, mock := newGateway(t)
	repo := mysql.NewCustomerRepository(gw)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN clientes c ON c.nombre = v.cliente")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cliente", "email", "telefono", "compras", "total_gastado"}))

	list, err := repo.Frequent(context.Background(), 10, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}
