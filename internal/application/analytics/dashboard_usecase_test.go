package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de StatsRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeStatsRepo struct {
	totals   repository.AssetTotals
	opsCount int
	whCount  int
	aggs     []repository.CategoryAgg
	err      error
	opsFrom  time.Time
	opsTo    time.Time
}

func (r *fakeStatsRepo) GetAssetTotals(context.Context, string) (repository.AssetTotals, error) {
	return r.totals, r.err
}

func (r *fakeStatsRepo) CountOperations(_ context.Context, _ string, from, to time.Time) (int, error) {
	r.opsFrom, r.opsTo = from, to
	return r.opsCount, r.err
}

func (r *fakeStatsRepo) CountActiveWarehouses(context.Context, string) (int, error) {
	return r.whCount, r.err
}

func (r *fakeStatsRepo) GetCategoryAggregates(context.Context, string) ([]repository.CategoryAgg, error) {
	return r.aggs, r.err
}

func fixedNowUseCase(repo *fakeStatsRepo, now time.Time) *DashboardUseCase {
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return now }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// GetStats
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_MetricasGenerales(t *testing.T) {
	repo := &fakeStatsRepo{
		totals:   repository.AssetTotals{Count: 12, Value: decimal.NewFromInt(34500)},
		opsCount: 7,
		whCount:  3,
	}
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	uc := fixedNowUseCase(repo, now)

	out, err := uc.GetStats(context.Background(), "company-a")
	require.NoError(t, err)

	assert.Equal(t, 12, out.TotalAssets)
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(34500)))
	assert.Equal(t, 7, out.OperationsToday)
	assert.Equal(t, 3, out.ActiveWarehouses)
}

func TestGetStats_RangoDelDiaEnCurso(t *testing.T) {
	repo := &fakeStatsRepo{}
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	uc := fixedNowUseCase(repo, now)

	_, err := uc.GetStats(context.Background(), "company-a")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), repo.opsFrom,
		"el conteo de operaciones debe arrancar a medianoche del día en curso")
	assert.Equal(t, now, repo.opsTo)
}

func TestGetStats_PropagaErrorDelRepositorio(t *testing.T) {
	sentinel := errors.New("db caída")
	uc := fixedNowUseCase(&fakeStatsRepo{err: sentinel}, time.Now())

	_, err := uc.GetStats(context.Background(), "company-a")
	assert.ErrorIs(t, err, sentinel)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetCategoryStats
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCategoryStats_PorcentajesYOrden(t *testing.T) {
	repo := &fakeStatsRepo{aggs: []repository.CategoryAgg{
		{Category: entity.CategoryMaterials, Count: 4, Value: decimal.NewFromInt(250)},
		{Category: entity.CategoryFixedAssets, Count: 2, Value: decimal.NewFromInt(750)},
	}}
	uc := fixedNowUseCase(repo, time.Now())

	out, err := uc.GetCategoryStats(context.Background(), "company-a")
	require.NoError(t, err)

	require.Len(t, out.Categories, 4, "siempre las cuatro categorías")
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(1000)))

	// Orden estable: fixed_assets, materials, goods, inventory.
	for i, category := range entity.AssetCategories {
		assert.Equal(t, category, out.Categories[i].Category)
	}

	byCat := map[string]int{}
	for i, e := range out.Categories {
		byCat[e.Category] = i
	}
	fixed := out.Categories[byCat[entity.CategoryFixedAssets]]
	assert.Equal(t, 2, fixed.Count)
	assert.True(t, fixed.Percentage.Equal(decimal.NewFromFloat(33.3)),
		"2 de 6 activos = 33.3%%, obtuvo %s", fixed.Percentage)

	materials := out.Categories[byCat[entity.CategoryMaterials]]
	assert.True(t, materials.Percentage.Equal(decimal.NewFromFloat(66.7)))

	goods := out.Categories[byCat[entity.CategoryGoods]]
	assert.Equal(t, 0, goods.Count)
	assert.True(t, goods.Value.IsZero())
	assert.True(t, goods.Percentage.IsZero())
}

func TestGetCategoryStats_RedondeoAUnDecimal(t *testing.T) {
	// 1 de 3 activos: 33.333... debe salir como 33.3.
	repo := &fakeStatsRepo{aggs: []repository.CategoryAgg{
		{Category: entity.CategoryFixedAssets, Count: 1, Value: decimal.NewFromInt(100)},
		{Category: entity.CategoryMaterials, Count: 2, Value: decimal.NewFromInt(200)},
	}}
	uc := fixedNowUseCase(repo, time.Now())

	out, err := uc.GetCategoryStats(context.Background(), "company-a")
	require.NoError(t, err)

	assert.Equal(t, "33.3", out.Categories[0].Percentage.String())
	assert.Equal(t, "66.7", out.Categories[1].Percentage.String())
}

func TestGetCategoryStats_TotalCero_SinDivisionPorCero(t *testing.T) {
	uc := fixedNowUseCase(&fakeStatsRepo{}, time.Now())

	out, err := uc.GetCategoryStats(context.Background(), "company-a")
	require.NoError(t, err)

	assert.True(t, out.TotalValue.IsZero())
	require.Len(t, out.Categories, 4)
	for _, e := range out.Categories {
		assert.Zero(t, e.Count)
		assert.True(t, e.Value.IsZero())
		assert.True(t, e.Percentage.IsZero())
	}
}

func TestGetCategoryStats_LecturaIdempotente(t *testing.T) {
	repo := &fakeStatsRepo{aggs: []repository.CategoryAgg{
		{Category: entity.CategoryGoods, Count: 5, Value: decimal.NewFromInt(900)},
	}}
	uc := fixedNowUseCase(repo, time.Now())

	first, err := uc.GetCategoryStats(context.Background(), "company-a")
	require.NoError(t, err)
	second, err := uc.GetCategoryStats(context.Background(), "company-a")
	require.NoError(t, err)

	assert.Equal(t, first, second, "misma entrada, misma salida")
}
