package usecase

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

// AuditUseCase consulta la bitácora que llena el trigger de ventas.
type AuditUseCase struct {
	repo repository.AuditRepository
}

func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List últimas entradas; limit fuera de rango usa el valor por defecto.
func (uc *AuditUseCase) List(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}
	return uc.repo.List(ctx, limit)
}
