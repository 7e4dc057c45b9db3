package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error)
	Update(ctx context.Context, companyID string, branch *entity.Branch) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Branch, error)
	// Deactivate baja lógica de la sucursal. Las bodegas y activos colgantes
	// se desactivan en el caso de uso, dentro de la misma transacción.
	Deactivate(ctx context.Context, companyID, id string) error
	// DeactivateByCompany baja lógica de todas las sucursales de la empresa.
	DeactivateByCompany(ctx context.Context, companyID string) error
}
