package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de activo.
const (
	CategoryFixedAssets = "fixed_assets"
	CategoryMaterials   = "materials"
	CategoryGoods       = "goods"
	CategoryInventory   = "inventory"
)

// AssetCategories lista cerrada de categorías (orden estable para reportes).
var AssetCategories = []string{CategoryFixedAssets, CategoryMaterials, CategoryGoods, CategoryInventory}

// Estados de activo.
const (
	AssetStatusActive   = "active"
	AssetStatusInactive = "inactive"
	AssetStatusRepair   = "repair"
	AssetStatusDisposed = "disposed"
)

// ValidCategory indica si el string corresponde a una categoría conocida.
func ValidCategory(c string) bool {
	for _, k := range AssetCategories {
		if c == k {
			return true
		}
	}
	return false
}

// ValidAssetStatus indica si el string corresponde a un estado conocido.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusActive, AssetStatusInactive, AssetStatusRepair, AssetStatusDisposed:
		return true
	}
	return false
}

// AccountableStatuses estados que cuentan como patrimonio en los agregados
// del dashboard. Un activo dado de baja (disposed) queda fuera de totales,
// valores y porcentajes por categoría.
func AccountableStatuses() []string {
	return []string{AssetStatusActive, AssetStatusInactive, AssetStatusRepair}
}

// Asset representa un activo físico de la empresa.
// InventoryNumber es único en todo el sistema e inmutable después de crear.
// La empresa dueña es siempre warehouse.branch.company_id; esa cadena se
// revalida en cada reasignación de bodega.
type Asset struct {
	ID              string
	InventoryNumber string
	Name            string
	Description     string
	Category        string          // ver constantes Category*
	Cost            decimal.Decimal // > 0
	Quantity        int             // > 0
	Status          string          // ver constantes AssetStatus*
	WarehouseID     string
	SerialNumber    string
	PurchaseDate    *time.Time
	WarrantyUntil   *time.Time
	Supplier        string
	Notes           string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TotalValue devuelve cost × quantity.
func (a *Asset) TotalValue() decimal.Decimal {
	return a.Cost.Mul(decimal.NewFromInt(int64(a.Quantity)))
}
