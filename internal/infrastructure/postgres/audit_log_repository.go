package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de persistencia para auditoría. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create registra un evento de auditoría. El registro lleva company_id propio
// para consultarlo sin reconstruir el alcance del recurso original.
func (r *AuditLogRepo) Create(ctx context.Context, entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, company_id, action, resource_type, resource_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.CompanyID, entry.Action,
		entry.ResourceType, entry.ResourceID, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByCompany lista los eventos de auditoría de la empresa, más recientes primero.
func (r *AuditLogRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, user_id, company_id, action, resource_type, resource_id, timestamp
		FROM audit_logs
		WHERE company_id = $1
		ORDER BY timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var e entity.AuditLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.Action, &e.ResourceType, &e.ResourceID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
