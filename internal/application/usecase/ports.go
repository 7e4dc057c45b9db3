package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AdminTxRunner ejecuta fn dentro de una transacción con los repositorios
// administrativos. Lo usan el registro de empresa (empresa + admin inicial en
// un solo commit) y las bajas lógicas en cascada.
// La implementación vive en infrastructure/postgres.
type AdminTxRunner interface {
	RunAdmin(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		branchRepo repository.BranchRepository,
		warehouseRepo repository.WarehouseRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
