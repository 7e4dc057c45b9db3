package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// OperationFilter filtros opcionales para listar operaciones.
type OperationFilter struct {
	Type     string
	AssetID  string
	DateFrom *time.Time
	DateTo   *time.Time
}

// AssetOperationRepository define el puerto de persistencia para el libro de
// operaciones (DIP). Las filas nunca se actualizan; Deactivate existe solo
// como corrección administrativa.
type AssetOperationRepository interface {
	Create(ctx context.Context, op *entity.AssetOperation) error
	GetByID(ctx context.Context, companyID, id string) (*entity.AssetOperation, error)
	// ListByCompany devuelve operaciones ordenadas por operation_date descendente.
	ListByCompany(ctx context.Context, companyID string, f OperationFilter, limit, offset int) ([]*entity.AssetOperation, error)
	CountByCompany(ctx context.Context, companyID string, f OperationFilter) (int, error)
	Deactivate(ctx context.Context, companyID, id string) error
}
