package entity

import "time"

// Branch representa una sucursal de la empresa. Agrupa bodegas.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
