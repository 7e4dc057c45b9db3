package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// El scope por empresa se resuelve con JOIN a branches: una bodega "es" de la
// empresa si su sucursal lo es.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	// GetByID devuelve nil si la bodega no existe, está inactiva o su
	// sucursal pertenece a otra empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.Warehouse, error)
	Update(ctx context.Context, companyID string, warehouse *entity.Warehouse) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error)
	ListByBranch(ctx context.Context, companyID, branchID string) ([]*entity.Warehouse, error)
	Deactivate(ctx context.Context, companyID, id string) error
	// DeactivateByBranch baja lógica de todas las bodegas de una sucursal
	// (cascada explícita al desactivar la sucursal).
	DeactivateByBranch(ctx context.Context, companyID, branchID string) error
	// DeactivateByCompany baja lógica de todas las bodegas de la empresa.
	DeactivateByCompany(ctx context.Context, companyID string) error
}
