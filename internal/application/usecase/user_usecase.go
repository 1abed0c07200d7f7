package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

const minPasswordLen = 6

// UserUseCase administración de usuarios del sistema.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List usuarios ordenados por username.
func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.repo.List(ctx)
}

// Create guarda el usuario con la contraseña convertida a digest SHA-256.
func (uc *UserUseCase) Create(ctx context.Context, username, password, nombre, rol string) (int64, error) {
	username = strings.TrimSpace(username)
	nombre = strings.TrimSpace(nombre)
	switch {
	case username == "":
		return 0, entity.ErrFieldRequired("username")
	case len(password) < minPasswordLen:
		return 0, entity.ErrFieldInvalid("password", fmt.Sprintf("debe tener al menos %d caracteres", minPasswordLen))
	case nombre == "":
		return 0, entity.ErrFieldRequired("nombre")
	}
	if rol == "" {
		rol = entity.RoleUser
	}
	if !entity.ValidRole(rol) {
		return 0, entity.ErrFieldInvalid("rol", "debe ser uno de "+strings.Join(entity.Roles, ", "))
	}

	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("%w: username %q ya existe", domain.ErrDuplicate, username)
	}
	return uc.repo.Create(ctx, &entity.User{
		Username:     username,
		PasswordHash: entity.HashPassword(password),
		Nombre:       nombre,
		Rol:          rol,
	})
}

// Delete borra un usuario. No se permite que un usuario se borre a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, id, currentUserID int64) (int64, error) {
	if id == currentUserID {
		return 0, fmt.Errorf("%w: no puede eliminar su propio usuario", domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}
