package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para sucursales. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		branch.ID, branch.CompanyID, branch.Name, branch.Address,
		branch.IsActive, branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal activa de la empresa indicada.
func (r *BranchRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, is_active, created_at, updated_at
		FROM branches WHERE id = $1 AND company_id = $2 AND is_active = TRUE`
	var b entity.Branch
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// Update actualiza una sucursal bajo el filtro de empresa.
func (r *BranchRepo) Update(ctx context.Context, companyID string, branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $3, address = $4, updated_at = $5
		WHERE id = $1 AND company_id = $2 AND is_active = TRUE`
	_, err := r.q.Exec(ctx, query,
		branch.ID, companyID, branch.Name, branch.Address, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// ListByCompany lista sucursales activas de la empresa con paginación.
func (r *BranchRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, is_active, created_at, updated_at
		FROM branches WHERE company_id = $1 AND is_active = TRUE
		ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Deactivate baja lógica de la sucursal bajo el filtro de empresa.
func (r *BranchRepo) Deactivate(ctx context.Context, companyID, id string) error {
	query := `UPDATE branches SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deactivate branch: %w", err)
	}
	return nil
}

// DeactivateByCompany baja lógica de todas las sucursales de la empresa.
func (r *BranchRepo) DeactivateByCompany(ctx context.Context, companyID string) error {
	query := `UPDATE branches SET is_active = FALSE, updated_at = NOW() WHERE company_id = $1`
	_, err := r.q.Exec(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("deactivate branches by company: %w", err)
	}
	return nil
}
