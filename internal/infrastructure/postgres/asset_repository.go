package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
// Todo el alcance de empresa pasa por el doble JOIN assets → warehouses → branches;
// no existe columna company_id en assets.
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `a.id, a.inventory_number, a.name, a.description, a.category, a.cost,
	a.quantity, a.status, a.warehouse_id, a.serial_number, a.purchase_date, a.warranty_until,
	a.supplier, a.notes, a.is_active, a.created_at, a.updated_at`

const assetJoin = `
	FROM assets a
	JOIN warehouses w ON w.id = a.warehouse_id
	JOIN branches b ON b.id = w.branch_id`

// Create persiste un nuevo activo. El número de inventario lleva índice único;
// el conflicto se mapea a ErrDuplicate para que el asignador reintente.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, inventory_number, name, description, category, cost, quantity,
			status, warehouse_id, serial_number, purchase_date, warranty_until, supplier, notes,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		asset.ID, asset.InventoryNumber, asset.Name, asset.Description, asset.Category,
		asset.Cost, asset.Quantity, asset.Status, asset.WarehouseID, asset.SerialNumber,
		asset.PurchaseDate, asset.WarrantyUntil, asset.Supplier, asset.Notes,
		asset.IsActive, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert asset: %w", domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			// La bodega dejó de existir entre la validación y el insert.
			return fmt.Errorf("insert asset: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo activo de la empresa. Un activo de otra empresa
// devuelve (nil, nil), igual que uno inexistente.
func (r *AssetRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + assetJoin + `
	WHERE a.id = $1 AND b.company_id = $2 AND a.is_active = TRUE`
	row := r.q.QueryRow(ctx, query, id, companyID)
	asset, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return asset, nil
}

// Update actualiza los campos mutables de un activo bajo el filtro de empresa.
// inventory_number nunca cambia después de la creación.
func (r *AssetRepo) Update(ctx context.Context, companyID string, asset *entity.Asset) error {
	query := `
		UPDATE assets SET name = $3, description = $4, category = $5, cost = $6, quantity = $7,
			status = $8, warehouse_id = $9, serial_number = $10, purchase_date = $11,
			warranty_until = $12, supplier = $13, notes = $14, updated_at = $15
		WHERE id = $1 AND is_active = TRUE
		  AND warehouse_id IN (
			SELECT w.id FROM warehouses w
			JOIN branches b ON b.id = w.branch_id
			WHERE b.company_id = $2)`
	tag, err := r.q.Exec(ctx, query,
		asset.ID, companyID, asset.Name, asset.Description, asset.Category, asset.Cost,
		asset.Quantity, asset.Status, asset.WarehouseID, asset.SerialNumber,
		asset.PurchaseDate, asset.WarrantyUntil, asset.Supplier, asset.Notes, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// El activo se desactivó entre el GetByID del caller y este UPDATE.
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista activos activos de la empresa con filtros opcionales y paginación.
func (r *AssetRepo) ListByCompany(ctx context.Context, companyID string, filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + assetJoin + `
	WHERE b.company_id = $1 AND a.is_active = TRUE`
	args := []any{companyID}
	query, args = appendAssetFilters(query, args, filter)
	// Los activos se listan en orden de inserción; los listados de
	// historial (operaciones, auditoría) son los que invierten el orden.
	query += fmt.Sprintf(" ORDER BY a.created_at LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, asset)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los activos que coinciden con el mismo predicado de ListByCompany.
func (r *AssetRepo) CountByCompany(ctx context.Context, companyID string, filter repository.AssetFilter) (int, error) {
	query := `SELECT COUNT(*)` + assetJoin + `
	WHERE b.company_id = $1 AND a.is_active = TRUE`
	args := []any{companyID}
	query, args = appendAssetFilters(query, args, filter)

	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return count, nil
}

// InventoryNumberExists verifica globalmente si un número de inventario ya está
// en uso. Es global a propósito: el índice único no distingue empresas.
func (r *AssetRepo) InventoryNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM assets WHERE inventory_number = $1)`, number,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check inventory number: %w", err)
	}
	return exists, nil
}

// Deactivate baja lógica de un activo bajo el filtro de empresa.
func (r *AssetRepo) Deactivate(ctx context.Context, companyID, id string) error {
	query := `
		UPDATE assets SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
		  AND warehouse_id IN (
			SELECT w.id FROM warehouses w
			JOIN branches b ON b.id = w.branch_id
			WHERE b.company_id = $2)`
	_, err := r.q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deactivate asset: %w", err)
	}
	return nil
}

// DeactivateByWarehouse baja lógica de todos los activos de una bodega (cascada explícita).
func (r *AssetRepo) DeactivateByWarehouse(ctx context.Context, companyID, warehouseID string) error {
	query := `
		UPDATE assets SET is_active = FALSE, updated_at = NOW()
		WHERE warehouse_id = $1
		  AND warehouse_id IN (
			SELECT w.id FROM warehouses w
			JOIN branches b ON b.id = w.branch_id
			WHERE b.company_id = $2)`
	_, err := r.q.Exec(ctx, query, warehouseID, companyID)
	if err != nil {
		return fmt.Errorf("deactivate assets by warehouse: %w", err)
	}
	return nil
}

// DeactivateByBranch baja lógica de todos los activos de las bodegas de una sucursal.
func (r *AssetRepo) DeactivateByBranch(ctx context.Context, companyID, branchID string) error {
	query := `
		UPDATE assets SET is_active = FALSE, updated_at = NOW()
		WHERE warehouse_id IN (
			SELECT w.id FROM warehouses w
			JOIN branches b ON b.id = w.branch_id
			WHERE w.branch_id = $1 AND b.company_id = $2)`
	_, err := r.q.Exec(ctx, query, branchID, companyID)
	if err != nil {
		return fmt.Errorf("deactivate assets by branch: %w", err)
	}
	return nil
}

// DeactivateByCompany baja lógica de todos los activos de la empresa.
func (r *AssetRepo) DeactivateByCompany(ctx context.Context, companyID string) error {
	query := `
		UPDATE assets SET is_active = FALSE, updated_at = NOW()
		WHERE warehouse_id IN (
			SELECT w.id FROM warehouses w
			JOIN branches b ON b.id = w.branch_id
			WHERE b.company_id = $1)`
	_, err := r.q.Exec(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("deactivate assets by company: %w", err)
	}
	return nil
}

// appendAssetFilters agrega las condiciones opcionales al predicado base.
// List y Count comparten esta función para que el total siempre corresponda a la página.
func appendAssetFilters(query string, args []any, filter repository.AssetFilter) (string, []any) {
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (a.name ILIKE $%d OR a.inventory_number ILIKE $%d OR a.description ILIKE $%d)",
			len(args)+1, len(args)+2, len(args)+3)
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND a.category = $%d", len(args)+1)
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND a.status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND a.warehouse_id = $%d", len(args)+1)
		args = append(args, filter.WarehouseID)
	}
	return query, args
}

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.InventoryNumber, &a.Name, &a.Description, &a.Category, &a.Cost,
		&a.Quantity, &a.Status, &a.WarehouseID, &a.SerialNumber, &a.PurchaseDate,
		&a.WarrantyUntil, &a.Supplier, &a.Notes, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
