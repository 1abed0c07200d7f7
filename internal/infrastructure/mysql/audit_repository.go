package mysql

import (
	"context"
	"fmt"

	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
	"github.com/jhoicas/nexus-coffee/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo lectura de auditoria.
type AuditRepo struct {
	q Querier
}

func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// List últimas entradas, la más reciente primero.
func (r *AuditRepo) List(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	res, err := r.q.Execute(ctx,
		`SELECT id, tabla, accion, descripcion, usuario_id, fecha FROM auditoria ORDER BY fecha DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return mapAll(res.Rows, AuditFromRow)
}
