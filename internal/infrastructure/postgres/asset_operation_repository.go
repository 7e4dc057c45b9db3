package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetOperationRepository = (*AssetOperationRepo)(nil)

// AssetOperationRepo implementación del puerto AssetOperationRepository sobre PostgreSQL.
// Las operaciones se alcanzan por empresa a través del activo que afectan.
type AssetOperationRepo struct {
	q Querier
}

// NewAssetOperationRepository construye el adaptador de persistencia para operaciones. Pasar pool o tx (Querier).
func NewAssetOperationRepository(q Querier) *AssetOperationRepo {
	return &AssetOperationRepo{q: q}
}

const operationColumns = `o.id, o.operation_type, o.asset_id, o.quantity, o.from_warehouse_id,
	o.to_warehouse_id, o.user_id, o.operation_date, o.reason, o.notes, o.document_number,
	o.cost_before, o.cost_after, o.is_active, o.created_at`

const operationJoin = `
	FROM asset_operations o
	JOIN assets a ON a.id = o.asset_id
	JOIN warehouses w ON w.id = a.warehouse_id
	JOIN branches b ON b.id = w.branch_id`

// Create persiste una operación dentro de la transacción del caso de uso.
func (r *AssetOperationRepo) Create(ctx context.Context, op *entity.AssetOperation) error {
	query := `
		INSERT INTO asset_operations (id, operation_type, asset_id, quantity, from_warehouse_id,
			to_warehouse_id, user_id, operation_date, reason, notes, document_number,
			cost_before, cost_after, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Type, op.AssetID, op.Quantity, op.FromWarehouseID, op.ToWarehouseID,
		op.UserID, op.OperationDate, op.Reason, op.Notes, op.DocumentNumber,
		op.CostBefore, op.CostAfter, op.IsActive, op.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// GetByID obtiene una operación activa de la empresa.
func (r *AssetOperationRepo) GetByID(ctx context.Context, companyID, id string) (*entity.AssetOperation, error) {
	query := `SELECT ` + operationColumns + operationJoin + `
	WHERE o.id = $1 AND b.company_id = $2 AND o.is_active = TRUE`
	row := r.q.QueryRow(ctx, query, id, companyID)
	op, err := scanOperation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	return op, nil
}

// ListByCompany lista operaciones activas de la empresa, más recientes primero,
// con filtros opcionales por tipo, activo y rango de fechas.
func (r *AssetOperationRepo) ListByCompany(ctx context.Context, companyID string, filter repository.OperationFilter, limit, offset int) ([]*entity.AssetOperation, error) {
	query := `SELECT ` + operationColumns + operationJoin + `
	WHERE b.company_id = $1 AND o.is_active = TRUE`
	args := []any{companyID}
	query, args = appendOperationFilters(query, args, filter)
	query += fmt.Sprintf(" ORDER BY o.operation_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssetOperation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

// CountByCompany cuenta las operaciones que coinciden con el mismo predicado de ListByCompany.
func (r *AssetOperationRepo) CountByCompany(ctx context.Context, companyID string, filter repository.OperationFilter) (int, error) {
	query := `SELECT COUNT(*)` + operationJoin + `
	WHERE b.company_id = $1 AND o.is_active = TRUE`
	args := []any{companyID}
	query, args = appendOperationFilters(query, args, filter)

	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return count, nil
}

// Deactivate baja lógica de una operación bajo el filtro de empresa. El
// historial nunca se borra físicamente.
func (r *AssetOperationRepo) Deactivate(ctx context.Context, companyID, id string) error {
	query := `
		UPDATE asset_operations SET is_active = FALSE
		WHERE id = $1
		  AND asset_id IN (
			SELECT a.id FROM assets a
			JOIN warehouses w ON w.id = a.warehouse_id
			JOIN branches b ON b.id = w.branch_id
			WHERE b.company_id = $2)`
	_, err := r.q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deactivate operation: %w", err)
	}
	return nil
}

func appendOperationFilters(query string, args []any, filter repository.OperationFilter) (string, []any) {
	if filter.Type != "" {
		query += fmt.Sprintf(" AND o.operation_type = $%d", len(args)+1)
		args = append(args, filter.Type)
	}
	if filter.AssetID != "" {
		query += fmt.Sprintf(" AND o.asset_id = $%d", len(args)+1)
		args = append(args, filter.AssetID)
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND o.operation_date >= $%d", len(args)+1)
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND o.operation_date <= $%d", len(args)+1)
		args = append(args, *filter.DateTo)
	}
	return query, args
}

func scanOperation(row pgx.Row) (*entity.AssetOperation, error) {
	var o entity.AssetOperation
	err := row.Scan(
		&o.ID, &o.Type, &o.AssetID, &o.Quantity, &o.FromWarehouseID, &o.ToWarehouseID,
		&o.UserID, &o.OperationDate, &o.Reason, &o.Notes, &o.DocumentNumber,
		&o.CostBefore, &o.CostAfter, &o.IsActive, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
