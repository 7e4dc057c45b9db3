package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (usable con pool o tx).
// La pertenencia a la empresa se resuelve siempre con JOIN a branches; una
// bodega de otra empresa es indistinguible de una inexistente.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega. La validación de que la sucursal es de la
// empresa ocurre en el caso de uso antes de llamar aquí.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, branch_id, name, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.BranchID, warehouse.Name, warehouse.Address,
		warehouse.IsActive, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

const warehouseSelect = `
	SELECT w.id, w.branch_id, b.company_id, w.name, w.address, w.is_active, w.created_at, w.updated_at
	FROM warehouses w
	JOIN branches b ON b.id = w.branch_id`

// GetByID obtiene una bodega activa cuya sucursal pertenece a la empresa.
func (r *WarehouseRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Warehouse, error) {
	query := warehouseSelect + `
	WHERE w.id = $1 AND b.company_id = $2 AND w.is_active = TRUE AND b.is_active = TRUE`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&w.ID, &w.BranchID, &w.CompanyID, &w.Name, &w.Address, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Update actualiza una bodega bajo el filtro de empresa (subconsulta sobre branches).
func (r *WarehouseRepo) Update(ctx context.Context, companyID string, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, address = $4, updated_at = $5
		WHERE id = $1 AND is_active = TRUE
		  AND branch_id IN (SELECT id FROM branches WHERE company_id = $2)`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, companyID, warehouse.Name, warehouse.Address, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// ListByCompany lista bodegas activas de la empresa con paginación.
func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := warehouseSelect + `
	WHERE b.company_id = $1 AND w.is_active = TRUE AND b.is_active = TRUE
	ORDER BY w.created_at LIMIT $2 OFFSET $3`
	return r.queryList(ctx, query, companyID, limit, offset)
}

// ListByBranch lista bodegas activas de una sucursal de la empresa.
func (r *WarehouseRepo) ListByBranch(ctx context.Context, companyID, branchID string) ([]*entity.Warehouse, error) {
	query := warehouseSelect + `
	WHERE w.branch_id = $2 AND b.company_id = $1 AND w.is_active = TRUE AND b.is_active = TRUE
	ORDER BY w.created_at`
	return r.queryList(ctx, query, companyID, branchID)
}

// Deactivate baja lógica de la bodega bajo el filtro de empresa.
func (r *WarehouseRepo) Deactivate(ctx context.Context, companyID, id string) error {
	query := `
		UPDATE warehouses SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
		  AND branch_id IN (SELECT id FROM branches WHERE company_id = $2)`
	_, err := r.q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deactivate warehouse: %w", err)
	}
	return nil
}

// DeactivateByBranch baja lógica de todas las bodegas de una sucursal (cascada explícita).
func (r *WarehouseRepo) DeactivateByBranch(ctx context.Context, companyID, branchID string) error {
	query := `
		UPDATE warehouses SET is_active = FALSE, updated_at = NOW()
		WHERE branch_id = $1
		  AND branch_id IN (SELECT id FROM branches WHERE company_id = $2)`
	_, err := r.q.Exec(ctx, query, branchID, companyID)
	if err != nil {
		return fmt.Errorf("deactivate warehouses by branch: %w", err)
	}
	return nil
}

// DeactivateByCompany baja lógica de todas las bodegas de la empresa.
func (r *WarehouseRepo) DeactivateByCompany(ctx context.Context, companyID string) error {
	query := `
		UPDATE warehouses SET is_active = FALSE, updated_at = NOW()
		WHERE branch_id IN (SELECT id FROM branches WHERE company_id = $1)`
	_, err := r.q.Exec(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("deactivate warehouses by company: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.BranchID, &w.CompanyID, &w.Name, &w.Address, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
