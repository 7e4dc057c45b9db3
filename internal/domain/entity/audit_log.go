package entity

import "time"

// Acciones registradas en el log de auditoría.
const (
	AuditActionCreate     = "CREATE"
	AuditActionUpdate     = "UPDATE"
	AuditActionDeactivate = "DEACTIVATE"
	AuditActionLogin      = "LOGIN"
)

// AuditLog registra cada llamada que muta estado. Append-only: nunca se
// actualiza ni se borra una entrada.
type AuditLog struct {
	ID           string
	UserID       string
	CompanyID    string
	Action       string
	ResourceType string // Company, User, Branch, Warehouse, Asset, AssetOperation
	ResourceID   string
	Timestamp    time.Time
}
