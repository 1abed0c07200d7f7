package auth

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

// AuthUseCase valida credenciales contra usuarios. No emite tokens ni aplica
// bloqueos por intentos fallidos.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Authenticate devuelve el usuario si username y el digest SHA-256 de password
// coinciden. Credenciales vacías o incorrectas devuelven (nil, nil); con
// credenciales vacías no se consulta la base.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, nil
	}
	return uc.userRepo.FindByCredentials(ctx, username, entity.HashPassword(password))
}
