package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AssetTotals conteo y valor total (Σ cost × quantity) de activos vigentes.
// "Vigente" = is_active y status distinto de disposed.
type AssetTotals struct {
	Count int
	Value decimal.Decimal
}

// CategoryAgg resultado crudo de la agregación por categoría.
// Lo produce la DB; el caso de uso calcula los porcentajes.
type CategoryAgg struct {
	Category string
	Count    int
	Value    decimal.Decimal
}

// StatsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only: nunca se usan para autorizar ni mutar.
type StatsRepository interface {
	// GetAssetTotals devuelve conteo y valor de los activos vigentes de la empresa.
	GetAssetTotals(ctx context.Context, companyID string) (AssetTotals, error)
	// CountOperations cuenta operaciones activas en el rango [from, to].
	CountOperations(ctx context.Context, companyID string, from, to time.Time) (int, error)
	// CountActiveWarehouses cuenta bodegas activas (con sucursal activa).
	CountActiveWarehouses(ctx context.Context, companyID string) (int, error)
	// GetCategoryAggregates agrupa los activos vigentes por categoría en una
	// sola consulta; las categorías sin activos no aparecen en el resultado.
	GetCategoryAggregates(ctx context.Context, companyID string) ([]CategoryAgg, error)
}
