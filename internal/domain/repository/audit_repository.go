package repository

import (
	"context"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// AuditRepository lectura de la bitácora auditoria.
type AuditRepository interface {
	List(ctx context.Context, limit int) ([]*entity.AuditEntry, error)
}
