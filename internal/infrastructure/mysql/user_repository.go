package mysql

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password, nombre, rol, fecha_creacion`

// UserRepo implementación de UserRepository sobre MySQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) first(ctx context.Context, op, where string, args ...any) (*entity.User, error) {
	res, err := r.q.Execute(ctx, `SELECT `+userColumns+` FROM usuarios WHERE `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(res.Rows) == 0 {
		return nil, nil
	}
	return UserFromRow(res.Rows[0])
}

// FindByCredentials compara contra el digest guardado; (nil, nil) si no coincide.
func (r *UserRepo) FindByCredentials(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	return r.first(ctx, "find user by credentials", `username = ? AND password = ?`, username, passwordHash)
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.first(ctx, "get user", `username = ?`, username)
}

// List usuarios ordenados por username.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	res, err := r.q.Execute(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return mapAll(res.Rows, UserFromRow)
}

// Create inserta un usuario. PasswordHash debe venir ya calculado.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	res, err := r.q.Execute(ctx,
		`INSERT INTO usuarios (username, password, nombre, rol) VALUES (?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Nombre, u.Rol,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, fmt.Errorf("%w: username %q ya existe", domain.ErrDuplicate, u.Username)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertID, nil
}

// UpdatePassword reemplaza el digest guardado.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	res, err := r.q.Execute(ctx, `UPDATE usuarios SET password = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return 0, fmt.Errorf("update password: %w", err)
	}
	return res.RowsAffected, nil
}

// Delete borra el usuario; sus ventas quedan con usuario_id NULL ("Sistema").
func (r *UserRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.Execute(ctx, `DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return res.RowsAffected, nil
}
