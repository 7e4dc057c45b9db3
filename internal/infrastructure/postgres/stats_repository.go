package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de agregación para el dashboard, siempre sobre el
// alcance de una sola empresa.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de agregaciones. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetAssetTotals cuenta y valora los activos contables de la empresa.
// Los dados de baja (disposed) quedan fuera del total: ya no son patrimonio.
func (r *StatsRepo) GetAssetTotals(ctx context.Context, companyID string) (repository.AssetTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(a.cost * a.quantity), 0)
		FROM assets a
		JOIN warehouses w ON w.id = a.warehouse_id
		JOIN branches b ON b.id = w.branch_id
		WHERE b.company_id = $1 AND a.is_active = TRUE
		  AND a.status = ANY($2)`
	var totals repository.AssetTotals
	err := r.q.QueryRow(ctx, query, companyID, entity.AccountableStatuses()).
		Scan(&totals.Count, &totals.Value)
	if err != nil {
		return repository.AssetTotals{}, fmt.Errorf("asset totals: %w", err)
	}
	return totals, nil
}

// CountOperations cuenta las operaciones de la empresa en un rango de fechas.
func (r *StatsRepo) CountOperations(ctx context.Context, companyID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM asset_operations o
		JOIN assets a ON a.id = o.asset_id
		JOIN warehouses w ON w.id = a.warehouse_id
		JOIN branches b ON b.id = w.branch_id
		WHERE b.company_id = $1 AND o.is_active = TRUE
		  AND o.operation_date >= $2 AND o.operation_date <= $3`
	var count int
	if err := r.q.QueryRow(ctx, query, companyID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count operations: %w", err)
	}
	return count, nil
}

// CountActiveWarehouses cuenta las bodegas activas de la empresa.
func (r *StatsRepo) CountActiveWarehouses(ctx context.Context, companyID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM warehouses w
		JOIN branches b ON b.id = w.branch_id
		WHERE b.company_id = $1 AND w.is_active = TRUE AND b.is_active = TRUE`
	var count int
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count warehouses: %w", err)
	}
	return count, nil
}

// GetCategoryAggregates agrupa conteo y valor por categoría en una sola pasada.
// Las categorías sin activos no producen fila; el caso de uso las completa en cero.
func (r *StatsRepo) GetCategoryAggregates(ctx context.Context, companyID string) ([]repository.CategoryAgg, error) {
	query := `
		SELECT a.category, COUNT(*), COALESCE(SUM(a.cost * a.quantity), 0)
		FROM assets a
		JOIN warehouses w ON w.id = a.warehouse_id
		JOIN branches b ON b.id = w.branch_id
		WHERE b.company_id = $1 AND a.is_active = TRUE
		  AND a.status = ANY($2)
		GROUP BY a.category`
	rows, err := r.q.Query(ctx, query, companyID, entity.AccountableStatuses())
	if err != nil {
		return nil, fmt.Errorf("category aggregates: %w", err)
	}
	defer rows.Close()
	var aggs []repository.CategoryAgg
	for rows.Next() {
		var agg repository.CategoryAgg
		if err := rows.Scan(&agg.Category, &agg.Count, &agg.Value); err != nil {
			return nil, fmt.Errorf("scan category aggregate: %w", err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}
