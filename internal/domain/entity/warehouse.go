package entity

import "time"

// Warehouse representa una bodega donde se almacenan activos.
// Pertenece a una Branch; la empresa dueña se resuelve siempre por la cadena
// warehouse -> branch -> company, nunca por un campo suelto.
type Warehouse struct {
	ID        string
	BranchID  string
	CompanyID string // derivado del JOIN con branches; no es columna propia
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
