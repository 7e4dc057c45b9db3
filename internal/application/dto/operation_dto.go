package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyOperationRequest entrada para registrar una operación sobre un activo.
// Los campos obligatorios adicionales dependen del tipo: receipt exige
// quantity >= 1 y transfer exige to_warehouse_id. La bodega de origen no se
// acepta del cliente: se deriva de la bodega actual del activo.
type ApplyOperationRequest struct {
	Type           string           `json:"type" validate:"required,oneof=receipt transfer disposal adjustment"`
	AssetID        string           `json:"asset_id" validate:"required,uuid"`
	Quantity       int              `json:"quantity" validate:"omitempty,min=1"`
	ToWarehouseID  *string          `json:"to_warehouse_id" validate:"omitempty,uuid"`
	NewCost        *decimal.Decimal `json:"new_cost"`
	OperationDate  *time.Time       `json:"operation_date"`
	Reason         string           `json:"reason"`
	Notes          string           `json:"notes"`
	DocumentNumber string           `json:"document_number"`
}

// OperationFilterRequest filtros de listado de operaciones (query params).
type OperationFilterRequest struct {
	Type     string     `query:"type" validate:"omitempty,oneof=receipt transfer disposal adjustment"`
	AssetID  string     `query:"asset_id" validate:"omitempty,uuid"`
	DateFrom *time.Time `query:"date_from"`
	DateTo   *time.Time `query:"date_to"`
}

// OperationResponse salida de una operación del libro.
type OperationResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	AssetID         string           `json:"asset_id"`
	Quantity        int              `json:"quantity"`
	FromWarehouseID *string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string          `json:"to_warehouse_id,omitempty"`
	UserID          string           `json:"user_id"`
	OperationDate   time.Time        `json:"operation_date"`
	Reason          string           `json:"reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	DocumentNumber  string           `json:"document_number,omitempty"`
	CostBefore      *decimal.Decimal `json:"cost_before,omitempty"`
	CostAfter       *decimal.Decimal `json:"cost_after,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// OperationListResponse lista paginada de operaciones (más recientes primero).
type OperationListResponse struct {
	Items []OperationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
