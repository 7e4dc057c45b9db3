package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Company es la raíz del tenant,
// por eso es el único puerto cuyas lecturas no exigen company_id de scope.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// Deactivate marca la empresa como inactiva. La desactivación en cascada
	// de hijos se hace explícita en el caso de uso, dentro de una transacción.
	Deactivate(ctx context.Context, id string) error
}
