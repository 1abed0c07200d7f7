package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
)

// newGateway devuelve un gateway sobre sqlmock y verifica las expectativas al final.
func newGateway(t *testing.T) (*mysql.Gateway, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return mysql.NewGateway(db, nil), mock
}

func TestClassify(t *testing.T) {
	cases := map[string]mysql.Kind{
		"SELECT * FROM productos":                 mysql.KindQuery,
		"  select 1":                              mysql.KindQuery,
		"SHOW TABLES":                             mysql.KindQuery,
		"INSERT INTO ventas (cliente) VALUES (?)": mysql.KindInsert,
		"\n\tinsert into x values (1)":            mysql.KindInsert,
		"UPDATE productos SET stock = 1":          mysql.KindModify,
		"delete from clientes where id = 1":       mysql.KindModify,
		"INSERTAR algo":                           mysql.KindQuery,
		"":                                        mysql.KindQuery,
	}
	for stmt, want := range cases {
		assert.Equal(t, want, mysql.Classify(stmt), "sentencia %q", stmt)
	}
}

func TestGateway_QueryReturnsRows(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombre FROM clientes")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).
			AddRow(int64(1), "Ana").
			AddRow(int64(2), "Luis"))

	rows, err := gw.Query(context.Background(), "SELECT id, nombre FROM clientes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, mysql.Row{int64(1), "Ana"}, rows[0])
	assert.Equal(t, "Luis", rows[1].StringAt(1))
}

func TestGateway_QueryWithoutRowsIsEmpty(t *testing.T) {
	gw, mock := newGateway(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, err := gw.Query(context.Background(), "SELECT id FROM productos WHERE id = ?", 99)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGateway_InsertCommitsAndReturnsID(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clientes")).
		WithArgs("Ana", "ana@mail.com", "999").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	id, err := gw.Insert(context.Background(),
		"INSERT INTO clientes (nombre, email, telefono) VALUES (?, ?, ?)", "Ana", "ana@mail.com", "999")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestGateway_ModifyReturnsAffected(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE productos")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := gw.Modify(context.Background(), "UPDATE productos SET stock = 0")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestGateway_FailedWriteRollsBack(t *testing.T) {
	gw, mock := newGateway(t)
	boom := errors.New("duplicate")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM").WillReturnError(boom)
	mock.ExpectRollback()

	_, err := gw.Modify(context.Background(), "DELETE FROM productos WHERE id = ?", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestGateway_ConnectionFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	require.NoError(t, db.Close())
	gw := mysql.NewGateway(db, nil)

	_, err = gw.Query(context.Background(), "SELECT 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_InTxCommitsAllStatements(t *testing.T) {
	gw, mock := newGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ventas").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("UPDATE productos").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := gw.InTx(context.Background(), func(q mysql.Querier) error {
		res, err := q.Execute(context.Background(), "INSERT INTO ventas (cliente) VALUES (?)", "Ana")
		if err != nil {
			return err
		}
		assert.Equal(t, int64(10), res.LastInsertID)
		_, err = q.Execute(context.Background(), "UPDATE productos SET stock = stock - 1 WHERE id = ?", 1)
		return err
	})
	require.NoError(t, err)
}

func TestGateway_InTxRollsBackOnCallbackError(t *testing.T) {
	gw, mock := newGateway(t)
	abort := errors.New("sin stock")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ventas").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectRollback()

	err := gw.InTx(context.Background(), func(q mysql.Querier) error {
		if _, err := q.Execute(context.Background(), "INSERT INTO ventas (cliente) VALUES (?)", "Ana"); err != nil {
			return err
		}
		return abort
	})
	assert.ErrorIs(t, err, abort)
}

func TestGateway_ExecRunsDDLWithoutTransaction(t *testing.T) {
	gw, mock := newGateway(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS t")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, gw.Exec(context.Background(), "CREATE TABLE IF NOT EXISTS t (id INT)"))
}

func TestGateway_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	gw := mysql.NewGateway(db, nil)

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)
	err = gw.Ping(context.Background())
	assert.ErrorIs(t, err, domain.ErrConnection)

	mock.ExpectPing()
	assert.NoError(t, gw.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
