package repository

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByCredentials busca por username y digest de contraseña; (nil, nil) si no coincide.
	FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, user *entity.User) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
