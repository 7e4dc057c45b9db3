package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/reports"
	"github.com/jhoicas/Activos-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes y exportaciones.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler inyectando el caso de uso.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Assets godoc
// @Summary      Reporte de activos (conjunto completo, con totales)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        search        query  string  false  "Búsqueda"
// @Param        category      query  string  false  "Categoría"
// @Param        status        query  string  false  "Estado"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Success      200           {object}  dto.AssetReportResponse
// @Router       /api/reports/assets [get]
func (h *ReportHandler) Assets(c *fiber.Ctx) error {
	out, err := h.uc.AssetReport(c.UserContext(), GetCompanyID(c), assetFilterFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Operations godoc
// @Summary      Reporte de operaciones con desglose por tipo
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        type       query  string  false  "Tipo"
// @Param        asset_id   query  string  false  "Activo"
// @Param        date_from  query  string  false  "Desde (RFC3339)"
// @Param        date_to    query  string  false  "Hasta (RFC3339)"
// @Success      200        {object}  dto.OperationReportResponse
// @Router       /api/reports/operations [get]
func (h *ReportHandler) Operations(c *fiber.Ctx) error {
	filter, err := operationFilterFromQuery(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.OperationReport(c.UserContext(), GetCompanyID(c), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ExportExcel godoc
// @Summary      Exportar activos a Excel (.xlsx)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        search        query  string  false  "Búsqueda"
// @Param        category      query  string  false  "Categoría"
// @Param        status        query  string  false  "Estado"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Success      200  {file}  binary
// @Router       /api/reports/assets/export/excel [get]
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	data, err := h.uc.ExportAssetsExcel(c.UserContext(), GetCompanyID(c), assetFilterFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	filename := fmt.Sprintf("activos_%s.xlsx", time.Now().Format("20060102_1504"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportOperationsExcel godoc
// @Summary      Exportar operaciones a Excel (.xlsx)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        type       query  string  false  "Tipo"
// @Param        asset_id   query  string  false  "Activo"
// @Param        date_from  query  string  false  "Desde (RFC3339)"
// @Param        date_to    query  string  false  "Hasta (RFC3339)"
// @Success      200  {file}  binary
// @Router       /api/reports/operations/export/excel [get]
func (h *ReportHandler) ExportOperationsExcel(c *fiber.Ctx) error {
	filter, err := operationFilterFromQuery(c)
	if err != nil {
		return handleError(c, err)
	}
	data, err := h.uc.ExportOperationsExcel(c.UserContext(), GetCompanyID(c), filter)
	if err != nil {
		return handleError(c, err)
	}
	filename := fmt.Sprintf("operaciones_%s.xlsx", time.Now().Format("20060102_1504"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar activos a PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        search        query  string  false  "Búsqueda"
// @Param        category      query  string  false  "Categoría"
// @Param        status        query  string  false  "Estado"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Success      200  {file}  binary
// @Router       /api/reports/assets/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportAssetsPDF(c.UserContext(), GetCompanyID(c), assetFilterFromQuery(c))
	if err != nil {
		return handleError(c, err)
	}
	filename := fmt.Sprintf("activos_%s.pdf", time.Now().Format("20060102_1504"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

func assetFilterFromQuery(c *fiber.Ctx) dto.AssetFilterRequest {
	return dto.AssetFilterRequest{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		Status:      c.Query("status"),
		WarehouseID: c.Query("warehouse_id"),
	}
}

// operationFilterFromQuery arma el filtro de operaciones desde el query string.
// Una fecha malformada devuelve ErrInvalidInput para que handleError la mapee a 400.
func operationFilterFromQuery(c *fiber.Ctx) (dto.OperationFilterRequest, error) {
	filter := dto.OperationFilterRequest{
		Type:    c.Query("type"),
		AssetID: c.Query("asset_id"),
	}
	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filter, fmt.Errorf("%w: date_from inválido, formato RFC3339", domain.ErrInvalidInput)
		}
		filter.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filter, fmt.Errorf("%w: date_to inválido, formato RFC3339", domain.ErrInvalidInput)
		}
		filter.DateTo = &t
	}
	return filter, nil
}
