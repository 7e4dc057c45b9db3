package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleContador   = "contador"
	RoleBodeguero  = "bodeguero"
	RoleObservador = "observador"
)

// AllRoles lista los roles reconocidos; útil para endpoints de solo lectura
// que aceptan cualquier usuario autenticado.
var AllRoles = []string{RoleAdmin, RoleContador, RoleBodeguero, RoleObservador}

// RoleAllowed indica si role está dentro del conjunto permitido.
// Función pura: toda la autorización por rol pasa por aquí.
func RoleAllowed(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	return RoleAllowed(role, AllRoles...)
}

// User representa un usuario del sistema (pertenece a una Company).
// CompanyID es inmutable después de la creación.
type User struct {
	ID           string
	CompanyID    string
	Email        string // único en todo el sistema, no solo por empresa
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, contador, bodeguero, observador
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
