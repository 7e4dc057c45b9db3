package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las lecturas por empresa exigen companyID; FindByEmail es global
// porque el email es único en todo el sistema (se usa solo en login).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID devuelve nil si el usuario no existe, está inactivo o
	// pertenece a otra empresa (indistinguibles para el caller).
	GetByID(ctx context.Context, companyID, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, companyID string, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
	Deactivate(ctx context.Context, companyID, id string) error
	// DeactivateByCompany baja lógica de todos los usuarios de la empresa
	// (cascada del cierre de empresa).
	DeactivateByCompany(ctx context.Context, companyID string) error
}
