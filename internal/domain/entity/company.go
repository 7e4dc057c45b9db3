package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz del
// multi-tenant: todo lo demás (usuarios, sucursales, bodegas, activos) cuelga
// de una Company y nunca se consulta sin su company_id.
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria, única en todo el sistema
	Email     string
	Address   string
	IsActive  bool // baja lógica; nunca se elimina la fila
	CreatedAt time.Time
	UpdatedAt time.Time
}
