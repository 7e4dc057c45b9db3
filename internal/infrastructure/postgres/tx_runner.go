package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Activos-api/internal/application/operations"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ operations.TxRunner = (*TxRunner)(nil)
var _ usecase.AdminTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es el sobre de atomicidad del motor de operaciones: activo actualizado y fila
// del libro aparecen juntos o no aparece ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	assetRepo repository.AssetRepository,
	opRepo repository.AssetOperationRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	assetRepo := NewAssetRepository(tx)
	opRepo := NewAssetOperationRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(assetRepo, opRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAdmin inicia una transacción con los repos administrativos (registro de
// empresa con admin inicial y bajas lógicas en cascada).
func (r *TxRunner) RunAdmin(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	warehouseRepo repository.WarehouseRepository,
	assetRepo repository.AssetRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)
	branchRepo := NewBranchRepository(tx)
	warehouseRepo := NewWarehouseRepository(tx)
	assetRepo := NewAssetRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(companyRepo, userRepo, branchRepo, warehouseRepo, assetRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
