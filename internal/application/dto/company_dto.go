package dto

import "time"

// RegisterCompanyRequest entrada para registrar una empresa con su admin
// inicial. Empresa y usuario se crean en la misma transacción.
type RegisterCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	NIT           string `json:"nit" validate:"required,min=1,max=20"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
	AdminName     string `json:"admin_name" validate:"required,min=1,max=200"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
// El NIT es inmutable y no aparece aquí.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterCompanyResponse empresa recién creada junto con su admin.
type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Admin   UserResponse    `json:"admin"`
}
