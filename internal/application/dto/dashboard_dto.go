package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse métricas generales de la empresa.
// TotalAssets y TotalValue excluyen los activos dados de baja (disposed).
type DashboardStatsResponse struct {
	TotalAssets      int             `json:"total_assets"`
	TotalValue       decimal.Decimal `json:"total_value"`
	OperationsToday  int             `json:"operations_today"`
	ActiveWarehouses int             `json:"active_warehouses"`
}

// CategoryStatsEntry métricas de una categoría. Percentage es el porcentaje
// del conteo de la categoría sobre el total de activos, redondeado a 1 decimal.
type CategoryStatsEntry struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryStatsResponse distribución por categoría. Siempre contiene las
// cuatro categorías, con ceros donde no hay activos.
type CategoryStatsResponse struct {
	TotalValue decimal.Decimal      `json:"total_value"`
	Categories []CategoryStatsEntry `json:"categories"`
}
