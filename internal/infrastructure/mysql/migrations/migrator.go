package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

// Migration paso de esquema de una sola dirección. Up debe ser seguro sobre
// cualquiera de los estados conocidos de bases anteriores al registro.
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, m *Migrator) error
}

// Status estado de una migración conocida.
type Status struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Migrator aplica las migraciones pendientes y registra cada una en schema_migrations.
type Migrator struct {
	gw         *mysql.Gateway
	log        *logger.Logger
	migrations []Migration
}

// New construye el migrador con la lista de migraciones del sistema.
func New(gw *mysql.Gateway, log *logger.Logger) *Migrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Migrator{gw: gw, log: log.Component("migrations"), migrations: All()}
}

const ledgerDDL = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INT PRIMARY KEY,
		nombre VARCHAR(100) NOT NULL,
		aplicada_en DATETIME DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`

// Up aplica en orden las migraciones no registradas. Devuelve las versiones aplicadas.
// Se detiene en la primera que falle; las anteriores quedan registradas.
func (m *Migrator) Up(ctx context.Context) ([]int, error) {
	if err := m.gw.Exec(ctx, ledgerDDL); err != nil {
		return nil, fmt.Errorf("crear schema_migrations: %w", err)
	}
	done, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	var ran []int
	for _, mig := range m.migrations {
		if _, ok := done[mig.Version]; ok {
			continue
		}
		m.log.Info().Int("version", mig.Version).Str("nombre", mig.Name).Msg("aplicando migración")
		if err := mig.Up(ctx, m); err != nil {
			return ran, fmt.Errorf("migración %d (%s): %w", mig.Version, mig.Name, err)
		}
		if _, err := m.gw.Insert(ctx,
			`INSERT INTO schema_migrations (version, nombre) VALUES (?, ?)`,
			mig.Version, mig.Name,
		); err != nil {
			return ran, fmt.Errorf("registrar migración %d: %w", mig.Version, err)
		}
		ran = append(ran, mig.Version)
	}
	if len(ran) == 0 {
		m.log.Info().Msg("esquema al día")
	}
	return ran, nil
}

// Status lista las migraciones conocidas y si están aplicadas.
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	if err := m.gw.Exec(ctx, ledgerDDL); err != nil {
		return nil, fmt.Errorf("crear schema_migrations: %w", err)
	}
	done, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Status, 0, len(m.migrations))
	for _, mig := range m.migrations {
		st := Status{Version: mig.Version, Name: mig.Name}
		if at, ok := done[mig.Version]; ok {
			st.Applied = true
			st.AppliedAt = at
		}
		out = append(out, st)
	}
	return out, nil
}

func (m *Migrator) applied(ctx context.Context) (map[int]*time.Time, error) {
	rows, err := m.gw.Query(ctx, `SELECT version, aplicada_en FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("leer schema_migrations: %w", err)
	}
	done := make(map[int]*time.Time, len(rows))
	for _, r := range rows {
		v, err := r.Int64At(0)
		if err != nil {
			return nil, err
		}
		var at *time.Time
		if t, err := r.TimeAt(1); err == nil && !t.IsZero() {
			at = &t
		}
		done[int(v)] = at
	}
	return done, nil
}

// exec ejecuta varias sentencias DDL en orden.
func (m *Migrator) exec(ctx context.Context, statements ...string) error {
	for _, s := range statements {
		if err := m.gw.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
