package dto

import (
	"time"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token y datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// UserResponse salida de un usuario (nunca incluye el digest).
type UserResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Nombre        string     `json:"nombre"`
	Rol           string     `json:"rol"`
	FechaCreacion *time.Time `json:"fecha_creacion,omitempty"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		FechaCreacion: u.FechaCreacion,
	}
}

func NewUserList(list []*entity.User) ListResponse[UserResponse] {
	items := make([]UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, NewUserResponse(u))
	}
	return NewList(items)
}
