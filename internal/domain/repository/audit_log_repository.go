package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AuditLogRepository define el puerto para el log de auditoría (append-only).
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.AuditLog, error)
}
