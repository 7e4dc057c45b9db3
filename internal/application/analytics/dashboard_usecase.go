// Package analytics arma las métricas del dashboard. Solo lecturas: llamar
// dos veces con los mismos datos produce el mismo resultado.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase métricas agregadas de la empresa.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo, now: time.Now}
}

// GetStats devuelve las métricas generales. Las tres consultas son
// independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) GetStats(ctx context.Context, companyID string) (*dto.DashboardStatsResponse, error) {
	now := uc.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals repository.AssetTotals
		err    error
	}
	type countResult struct {
		n   int
		err error
	}
	totalsCh := make(chan totalsResult, 1)
	opsCh := make(chan countResult, 1)
	whCh := make(chan countResult, 1)

	go func() {
		t, err := uc.statsRepo.GetAssetTotals(ctx, companyID)
		totalsCh <- totalsResult{totals: t, err: err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOperations(ctx, companyID, dayStart, now)
		opsCh <- countResult{n: n, err: err}
	}()
	go func() {
		n, err := uc.statsRepo.CountActiveWarehouses(ctx, companyID)
		whCh <- countResult{n: n, err: err}
	}()

	totals := <-totalsCh
	ops := <-opsCh
	wh := <-whCh
	if totals.err != nil {
		return nil, totals.err
	}
	if ops.err != nil {
		return nil, ops.err
	}
	if wh.err != nil {
		return nil, wh.err
	}

	return &dto.DashboardStatsResponse{
		TotalAssets:      totals.totals.Count,
		TotalValue:       totals.totals.Value,
		OperationsToday:  ops.n,
		ActiveWarehouses: wh.n,
	}, nil
}

// GetCategoryStats devuelve la distribución por categoría. Siempre contiene
// las cuatro categorías en orden estable, con ceros donde no hay activos, y
// el porcentaje del conteo sobre el total de activos redondeado a 1 decimal
// (cero si el total es cero).
func (uc *DashboardUseCase) GetCategoryStats(ctx context.Context, companyID string) (*dto.CategoryStatsResponse, error) {
	aggs, err := uc.statsRepo.GetCategoryAggregates(ctx, companyID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]repository.CategoryAgg, len(aggs))
	totalValue := decimal.Zero
	totalCount := 0
	for _, agg := range aggs {
		byCategory[agg.Category] = agg
		totalValue = totalValue.Add(agg.Value)
		totalCount += agg.Count
	}

	out := &dto.CategoryStatsResponse{TotalValue: totalValue}
	for _, category := range entity.AssetCategories {
		entry := dto.CategoryStatsEntry{
			Category:   category,
			Value:      decimal.Zero,
			Percentage: decimal.Zero,
		}
		if agg, ok := byCategory[category]; ok {
			entry.Count = agg.Count
			entry.Value = agg.Value
			if totalCount > 0 {
				entry.Percentage = decimal.NewFromInt(int64(agg.Count)).
					Div(decimal.NewFromInt(int64(totalCount))).
					Mul(hundred).Round(1)
			}
		}
		out.Categories = append(out.Categories, entry)
	}
	return out, nil
}
