package repository

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// ConfigRepository acceso a la tabla clave/valor configuracion.
type ConfigRepository interface {
	GetAll(ctx context.Context) ([]*entity.ConfigEntry, error)
	// Get devuelve (nil, nil) si la clave no existe.
	Get(ctx context.Context, key string) (*entity.ConfigEntry, error)
	// Set inserta o actualiza el valor (upsert por clave).
	Set(ctx context.Context, key, value string) error
}
