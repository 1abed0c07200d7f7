package mysql

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementación de ConfigRepository.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador de configuración.
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// GetAll todas las claves ordenadas.
func (r *ConfigRepo) GetAll(ctx context.Context) ([]*entity.ConfigEntry, error) {
	res, err := r.q.Execute(ctx, `SELECT clave, valor, descripcion FROM configuracion ORDER BY clave`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	return mapAll(res.Rows, ConfigFromRow)
}

// Get una clave; (nil, nil) si no existe.
func (r *ConfigRepo) Get(ctx context.Context, key string) (*entity.ConfigEntry, error) {
	res, err := r.q.Execute(ctx, `SELECT clave, valor, descripcion FROM configuracion WHERE clave = ?`, key)
	if err != nil {
		return nil, fmt.Errorf("get config %s: %w", key, err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return ConfigFromRow(res.Rows[0])
}

// Set upsert por clave.
func (r *ConfigRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.q.Execute(ctx,
		`INSERT INTO configuracion (clave, valor) VALUES (?, ?) ON DUPLICATE KEY UPDATE valor = VALUES(valor)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set config %s: %w", key, err)
	}
	return nil
}
