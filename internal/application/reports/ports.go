package reports

import "github.com/jhoicas/Activos-api/internal/application/dto"

// AssetRenderer convierte un reporte de activos en un documento descargable.
// Las implementaciones (Excel, PDF) viven en infrastructure.
type AssetRenderer interface {
	RenderAssets(report *dto.AssetReportResponse) ([]byte, error)
}

// OperationRenderer convierte un reporte de operaciones en un documento.
type OperationRenderer interface {
	RenderOperations(report *dto.OperationReportResponse) ([]byte, error)
}
