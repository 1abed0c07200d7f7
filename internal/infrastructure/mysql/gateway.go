package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

// Row fila posicional tal como la entrega el driver (los mappers la convierten en entidades).
type Row []any

// Kind clasificación de una sentencia según su palabra inicial.
type Kind int

const (
	KindQuery  Kind = iota // SELECT, SHOW, DESCRIBE...: devuelve filas, sin transacción
	KindInsert             // INSERT: commit y último id generado
	KindModify             // UPDATE / DELETE: commit y filas afectadas
)

// Result resultado de Execute; solo se llena el campo que corresponde al Kind.
type Result struct {
	Rows         []Row
	LastInsertID int64
	RowsAffected int64
}

// Querier ejecuta sentencias. Lo implementan Gateway (una conexión por llamada)
// y el ejecutor transaccional que recibe el callback de InTx.
type Querier interface {
	Execute(ctx context.Context, statement string, args ...any) (Result, error)
}

// Classify determina el Kind ignorando espacios iniciales y mayúsculas.
func Classify(statement string) Kind {
	s := strings.TrimSpace(statement)
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '('
	})
	if end >= 0 {
		s = s[:end]
	}
	switch strings.ToUpper(s) {
	case "INSERT":
		return KindInsert
	case "UPDATE", "DELETE":
		return KindModify
	default:
		return KindQuery
	}
}

var _ Querier = (*Gateway)(nil)

// Gateway punto único de acceso a MySQL. Cada llamada toma una conexión dedicada
// del *sql.DB y la libera al terminar, haya error o no.
type Gateway struct {
	db  *sql.DB
	log *logger.Logger
}

// NewGateway construye el gateway. log puede ser nil.
func NewGateway(db *sql.DB, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{db: db, log: log.Component("mysql")}
}

// Execute ejecuta una sentencia. INSERT/UPDATE/DELETE corren en su propia
// transacción (commit al terminar, rollback si falla); el resto devuelve filas.
func (g *Gateway) Execute(ctx context.Context, statement string, args ...any) (Result, error) {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		g.log.Error().Err(err).Msg("no se pudo obtener conexión")
		return Result{}, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}
	defer conn.Close()

	kind := Classify(statement)
	if kind == KindQuery {
		res, err := run(ctx, conn, kind, statement, args)
		if err != nil {
			g.log.Error().Err(err).Str("sql", compact(statement)).Msg("consulta fallida")
		}
		return res, err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: begin: %w", domain.ErrConnection, err)
	}
	res, err := run(ctx, tx, kind, statement, args)
	if err != nil {
		_ = tx.Rollback()
		g.log.Error().Err(err).Str("sql", compact(statement)).Msg("sentencia revertida")
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

// Query ejecuta una sentencia de lectura y devuelve sus filas.
func (g *Gateway) Query(ctx context.Context, statement string, args ...any) ([]Row, error) {
	res, err := g.Execute(ctx, statement, args...)
	return res.Rows, err
}

// Insert ejecuta un INSERT y devuelve el id generado.
func (g *Gateway) Insert(ctx context.Context, statement string, args ...any) (int64, error) {
	res, err := g.Execute(ctx, statement, args...)
	return res.LastInsertID, err
}

// Modify ejecuta un UPDATE o DELETE y devuelve las filas afectadas.
func (g *Gateway) Modify(ctx context.Context, statement string, args ...any) (int64, error) {
	res, err := g.Execute(ctx, statement, args...)
	return res.RowsAffected, err
}

// Exec ejecuta una sentencia de esquema (CREATE, ALTER, DROP) sin transacción:
// MySQL hace commit implícito de DDL. Sin parámetros se envía por protocolo de
// texto, requisito para CREATE TRIGGER.
func (g *Gateway) Exec(ctx context.Context, statement string) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		g.log.Error().Err(err).Msg("no se pudo obtener conexión")
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, statement); err != nil {
		g.log.Error().Err(err).Str("sql", compact(statement)).Msg("ddl fallida")
		return fmt.Errorf("exec ddl: %w", err)
	}
	return nil
}

// Ping verifica que se puede abrir una conexión.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}
	return nil
}

// InTx ejecuta fn sobre una sola conexión y una sola transacción.
// Si fn devuelve error se hace rollback de todo y se propaga ese error.
func (g *Gateway) InTx(ctx context.Context, fn func(q Querier) error) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		g.log.Error().Err(err).Msg("no se pudo obtener conexión")
		return fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", domain.ErrConnection, err)
	}
	if err := fn(&txQuerier{tx: tx}); err != nil {
		_ = tx.Rollback()
		g.log.Warn().Err(err).Msg("transacción revertida")
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txQuerier ejecuta dentro de una transacción abierta; no hace commit por sentencia.
type txQuerier struct {
	tx *sql.Tx
}

func (q *txQuerier) Execute(ctx context.Context, statement string, args ...any) (Result, error) {
	return run(ctx, q.tx, Classify(statement), statement, args)
}

// execer lo cumplen *sql.Conn y *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func run(ctx context.Context, e execer, kind Kind, statement string, args []any) (Result, error) {
	if kind == KindQuery {
		rows, err := readAll(ctx, e, statement, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Rows: rows}, nil
	}

	res, err := e.ExecContext(ctx, statement, args...)
	if err != nil {
		return Result{}, fmt.Errorf("exec: %w", err)
	}
	var out Result
	if kind == KindInsert {
		if out.LastInsertID, err = res.LastInsertId(); err != nil {
			return Result{}, fmt.Errorf("last insert id: %w", err)
		}
		return out, nil
	}
	if out.RowsAffected, err = res.RowsAffected(); err != nil {
		return Result{}, fmt.Errorf("rows affected: %w", err)
	}
	return out, nil
}

func readAll(ctx context.Context, e execer, statement string, args []any) ([]Row, error) {
	rows, err := e.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	out := make([]Row, 0)
	for rows.Next() {
		row := make(Row, len(cols))
		dest := make([]any, len(cols))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// compact deja la sentencia en una sola línea para los logs.
func compact(statement string) string {
	return strings.Join(strings.Fields(statement), " ")
}
