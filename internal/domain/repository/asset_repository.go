package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetFilter filtros opcionales para listar/contar activos.
// Search aplica ILIKE sobre name, inventory_number y description.
type AssetFilter struct {
	Search      string
	Category    string
	Status      string
	WarehouseID string
}

// AssetRepository define el puerto de persistencia para Asset (DIP).
// Toda lectura y escritura exige companyID; la pertenencia se resuelve por la
// cadena asset -> warehouse -> branch -> company.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	// GetByID devuelve nil si el activo no existe, está inactivo o pertenece
	// a otra empresa (misma respuesta en los tres casos, no filtra existencia).
	GetByID(ctx context.Context, companyID, id string) (*entity.Asset, error)
	// Update persiste el activo bajo el filtro de empresa. El caller debe
	// haber re-resuelto la fila con GetByID del mismo scope antes de mutar.
	Update(ctx context.Context, companyID string, asset *entity.Asset) error
	ListByCompany(ctx context.Context, companyID string, f AssetFilter, limit, offset int) ([]*entity.Asset, error)
	// CountByCompany replica el predicado de ListByCompany para metadatos de paginación.
	CountByCompany(ctx context.Context, companyID string, f AssetFilter) (int, error)
	// InventoryNumberExists verifica unicidad global (en todas las empresas).
	InventoryNumberExists(ctx context.Context, inventoryNumber string) (bool, error)
	Deactivate(ctx context.Context, companyID, id string) error
	// DeactivateByWarehouse / DeactivateByBranch / DeactivateByCompany:
	// cascadas explícitas de baja lógica.
	DeactivateByWarehouse(ctx context.Context, companyID, warehouseID string) error
	DeactivateByBranch(ctx context.Context, companyID, branchID string) error
	DeactivateByCompany(ctx context.Context, companyID string) error
}
