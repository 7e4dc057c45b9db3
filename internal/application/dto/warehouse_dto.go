package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega en una sucursal.
type CreateWarehouseRequest struct {
	BranchID string `json:"branch_id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Address  string `json:"address"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega. La sucursal no
// se reasigna: mover una bodega de sucursal no es una operación soportada.
type UpdateWarehouseRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
