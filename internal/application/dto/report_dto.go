package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetReportResponse reporte de activos con los mismos filtros del listado,
// más los totales agregados del conjunto completo (no solo la página).
type AssetReportResponse struct {
	GeneratedAt time.Time       `json:"generated_at"`
	TotalCount  int             `json:"total_count"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Items       []AssetResponse `json:"items"`
}

// OperationReportResponse reporte de operaciones en un rango de fechas,
// con el desglose de conteos por tipo.
type OperationReportResponse struct {
	GeneratedAt  time.Time           `json:"generated_at"`
	DateFrom     *time.Time          `json:"date_from,omitempty"`
	DateTo       *time.Time          `json:"date_to,omitempty"`
	TotalCount   int                 `json:"total_count"`
	CountsByType map[string]int      `json:"counts_by_type"`
	Items        []OperationResponse `json:"items"`
}
