package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAssetRequest entrada para crear un activo. El número de inventario
// no viene en el body: lo asigna el sistema.
type CreateAssetRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Category      string          `json:"category" validate:"required,oneof=fixed_assets materials goods inventory"`
	Cost          decimal.Decimal `json:"cost" validate:"required"`
	Quantity      int             `json:"quantity" validate:"required,min=1"`
	WarehouseID   string          `json:"warehouse_id" validate:"required,uuid"`
	SerialNumber  string          `json:"serial_number"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
	WarrantyUntil *time.Time      `json:"warranty_until"`
	Supplier      string          `json:"supplier"`
	Notes         string          `json:"notes"`
}

// UpdateAssetRequest entrada para actualizar un activo (campos opcionales).
// Estado y costo no se tocan aquí: eso es territorio del libro de operaciones.
type UpdateAssetRequest struct {
	Name          *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description"`
	Category      *string    `json:"category" validate:"omitempty,oneof=fixed_assets materials goods inventory"`
	WarehouseID   *string    `json:"warehouse_id" validate:"omitempty,uuid"`
	SerialNumber  *string    `json:"serial_number"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	WarrantyUntil *time.Time `json:"warranty_until"`
	Supplier      *string    `json:"supplier"`
	Notes         *string    `json:"notes"`
}

// BulkUpdateAssetsRequest aplica los mismos cambios a varios activos.
type BulkUpdateAssetsRequest struct {
	AssetIDs []string           `json:"asset_ids" validate:"required,min=1,dive,uuid"`
	Changes  UpdateAssetRequest `json:"changes"`
}

// BulkUpdateAssetsResponse resultado por activo de una actualización masiva.
type BulkUpdateAssetsResponse struct {
	Updated int      `json:"updated"`
	Failed  []string `json:"failed,omitempty"` // IDs no encontrados en la empresa
}

// AssetFilterRequest filtros de listado (query params).
type AssetFilterRequest struct {
	Search      string `query:"search"`
	Category    string `query:"category" validate:"omitempty,oneof=fixed_assets materials goods inventory"`
	Status      string `query:"status" validate:"omitempty,oneof=active inactive repair disposed"`
	WarehouseID string `query:"warehouse_id" validate:"omitempty,uuid"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID              string          `json:"id"`
	InventoryNumber string          `json:"inventory_number"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Cost            decimal.Decimal `json:"cost"`
	Quantity        int             `json:"quantity"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Status          string          `json:"status"`
	WarehouseID     string          `json:"warehouse_id"`
	SerialNumber    string          `json:"serial_number,omitempty"`
	PurchaseDate    *time.Time      `json:"purchase_date,omitempty"`
	WarrantyUntil   *time.Time      `json:"warranty_until,omitempty"`
	Supplier        string          `json:"supplier,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
