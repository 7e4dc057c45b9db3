// Package reports genera reportes de activos y operaciones, en JSON o como
// documentos exportados (Excel, PDF).
package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/operations"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// batchSize tamaño de página interno al recorrer el conjunto completo.
const batchSize = 500

// UseCase arma reportes sobre el conjunto completo que coincide con los
// filtros, no sobre una página.
type UseCase struct {
	assetRepo repository.AssetRepository
	opRepo    repository.AssetOperationRepository
	excel     AssetRenderer
	opExcel   OperationRenderer
	pdf       AssetRenderer
}

// NewUseCase construye el caso de uso de reportes con sus renderers.
func NewUseCase(assetRepo repository.AssetRepository, opRepo repository.AssetOperationRepository, excel AssetRenderer, opExcel OperationRenderer, pdf AssetRenderer) *UseCase {
	return &UseCase{assetRepo: assetRepo, opRepo: opRepo, excel: excel, opExcel: opExcel, pdf: pdf}
}

// AssetReport devuelve todos los activos que coinciden con los filtros más
// los totales agregados.
func (uc *UseCase) AssetReport(ctx context.Context, companyID string, in dto.AssetFilterRequest) (*dto.AssetReportResponse, error) {
	filter := repository.AssetFilter{
		Search:      in.Search,
		Category:    in.Category,
		Status:      in.Status,
		WarehouseID: in.WarehouseID,
	}
	report := &dto.AssetReportResponse{
		GeneratedAt: time.Now(),
		TotalValue:  decimal.Zero,
	}
	for offset := 0; ; offset += batchSize {
		batch, err := uc.assetRepo.ListByCompany(ctx, companyID, filter, batchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, asset := range batch {
			report.Items = append(report.Items, *usecase.ToAssetResponse(asset))
			report.TotalValue = report.TotalValue.Add(asset.TotalValue())
		}
		if len(batch) < batchSize {
			break
		}
	}
	report.TotalCount = len(report.Items)
	return report, nil
}

// OperationReport devuelve todas las operaciones del rango con el desglose
// de conteos por tipo.
func (uc *UseCase) OperationReport(ctx context.Context, companyID string, in dto.OperationFilterRequest) (*dto.OperationReportResponse, error) {
	filter := repository.OperationFilter{
		Type:     in.Type,
		AssetID:  in.AssetID,
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
	}
	report := &dto.OperationReportResponse{
		GeneratedAt:  time.Now(),
		DateFrom:     in.DateFrom,
		DateTo:       in.DateTo,
		CountsByType: make(map[string]int),
	}
	for offset := 0; ; offset += batchSize {
		batch, err := uc.opRepo.ListByCompany(ctx, companyID, filter, batchSize, offset)
		if err != nil {
			return nil, err
		}
		for _, op := range batch {
			report.Items = append(report.Items, *operations.ToOperationResponse(op))
			report.CountsByType[op.Type]++
		}
		if len(batch) < batchSize {
			break
		}
	}
	report.TotalCount = len(report.Items)
	return report, nil
}

// ExportAssetsExcel genera el reporte de activos como archivo .xlsx.
func (uc *UseCase) ExportAssetsExcel(ctx context.Context, companyID string, in dto.AssetFilterRequest) ([]byte, error) {
	report, err := uc.AssetReport(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	return uc.excel.RenderAssets(report)
}

// ExportOperationsExcel genera el reporte de operaciones como archivo .xlsx.
func (uc *UseCase) ExportOperationsExcel(ctx context.Context, companyID string, in dto.OperationFilterRequest) ([]byte, error) {
	report, err := uc.OperationReport(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	return uc.opExcel.RenderOperations(report)
}

// ExportAssetsPDF genera el reporte de activos como documento PDF.
func (uc *UseCase) ExportAssetsPDF(ctx context.Context, companyID string, in dto.AssetFilterRequest) ([]byte, error) {
	report, err := uc.AssetReport(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderAssets(report)
}
