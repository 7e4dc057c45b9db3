package operations

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a
// ella. Si fn devuelve error, nada de lo escrito dentro queda persistido.
// La implementación vive en infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		opRepo repository.AssetOperationRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
