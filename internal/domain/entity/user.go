package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
	RoleUser    = "user"
)

// Roles lista ordenada de roles aceptados por la columna usuarios.rol.
var Roles = []string{RoleAdmin, RoleManager, RoleCashier, RoleUser}

// ValidRole indica si r pertenece al conjunto de roles.
func ValidRole(r string) bool {
	return slices.Contains(Roles, r)
}

// User representa un usuario del sistema (tabla usuarios).
type User struct {
	ID            int64
	Username      string
	PasswordHash  string // SHA-256 en hexadecimal (64 caracteres), nunca texto plano
	Nombre        string
	Rol           string
	FechaCreacion *time.Time
}

// HashPassword devuelve el digest SHA-256 hex que se guarda en usuarios.password.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
