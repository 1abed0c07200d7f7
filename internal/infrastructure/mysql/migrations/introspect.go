package migrations

import (
	"context"
	"fmt"
)

// Consultas a information_schema sobre la base actual (DATABASE()).

func (m *Migrator) count(ctx context.Context, query string, args ...any) (int64, error) {
	rows, err := m.gw.Query(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Int64At(0)
}

func (m *Migrator) tableExists(ctx context.Context, table string) (bool, error) {
	n, err := m.count(ctx, `
		SELECT COUNT(*) FROM information_schema.TABLES
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?`, table)
	if err != nil {
		return false, fmt.Errorf("tableExists %s: %w", table, err)
	}
	return n > 0, nil
}

func (m *Migrator) columnExists(ctx context.Context, table, column string) (bool, error) {
	n, err := m.count(ctx, `
		SELECT COUNT(*) FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? AND COLUMN_NAME = ?`, table, column)
	if err != nil {
		return false, fmt.Errorf("columnExists %s.%s: %w", table, column, err)
	}
	return n > 0, nil
}

func (m *Migrator) foreignKeyExists(ctx context.Context, table, name string) (bool, error) {
	n, err := m.count(ctx, `
		SELECT COUNT(*) FROM information_schema.TABLE_CONSTRAINTS
		WHERE CONSTRAINT_SCHEMA = DATABASE() AND TABLE_NAME = ? AND CONSTRAINT_NAME = ?
		AND CONSTRAINT_TYPE = 'FOREIGN KEY'`, table, name)
	if err != nil {
		return false, fmt.Errorf("foreignKeyExists %s.%s: %w", table, name, err)
	}
	return n > 0, nil
}

func (m *Migrator) indexExists(ctx context.Context, table, name string) (bool, error) {
	n, err := m.count(ctx, `
		SELECT COUNT(*) FROM information_schema.STATISTICS
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? AND INDEX_NAME = ?`, table, name)
	if err != nil {
		return false, fmt.Errorf("indexExists %s.%s: %w", table, name, err)
	}
	return n > 0, nil
}

// foreignKeysOn nombres de las FK definidas sobre una columna.
func (m *Migrator) foreignKeysOn(ctx context.Context, table, column string) ([]string, error) {
	rows, err := m.gw.Query(ctx, `
		SELECT DISTINCT CONSTRAINT_NAME FROM information_schema.KEY_COLUMN_USAGE
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? AND COLUMN_NAME = ?
		AND REFERENCED_TABLE_NAME IS NOT NULL`, table, column)
	if err != nil {
		return nil, fmt.Errorf("foreignKeysOn %s.%s: %w", table, column, err)
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.StringAt(0))
	}
	return names, nil
}

// dropForeignKeys elimina las FK sobre la columna (paso previo a borrarla).
func (m *Migrator) dropForeignKeys(ctx context.Context, table, column string) error {
	names, err := m.foreignKeysOn(ctx, table, column)
	if err != nil {
		return err
	}
	for _, n := range names {
		m.log.Info().Str("tabla", table).Str("fk", n).Msg("eliminando clave foránea")
		if err := m.gw.Exec(ctx, fmt.Sprintf("ALTER TABLE `%s` DROP FOREIGN KEY `%s`", table, n)); err != nil {
			return err
		}
	}
	return nil
}
