// Package excel genera los reportes de activos y operaciones como .xlsx.
package excel

import (
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/reports"
	"github.com/xuri/excelize/v2"
)

var (
	_ reports.AssetRenderer     = (*Exporter)(nil)
	_ reports.OperationRenderer = (*Exporter)(nil)
)

// Exporter implementa los renderers de reports usando excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// headers columnas del reporte de activos, en el orden de salida.
var headers = []string{
	"N° Inventario", "Nombre", "Descripción", "Categoría", "Estado",
	"Cantidad", "Costo Unitario", "Valor Total", "N° Serie", "Proveedor", "Fecha de Compra",
}

// operationHeaders columnas del reporte de operaciones.
var operationHeaders = []string{
	"Fecha", "Tipo", "ID Activo", "Cantidad", "Bodega Origen", "Bodega Destino",
	"Motivo", "Documento", "Notas",
}

// RenderAssets genera el archivo .xlsx del reporte y devuelve sus bytes.
func (e *Exporter) RenderAssets(report *dto.AssetReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Activos"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %q: %w", h, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, a := range report.Items {
		rowIdx := i + 2
		purchaseDate := ""
		if a.PurchaseDate != nil {
			purchaseDate = a.PurchaseDate.Format("02/01/2006")
		}
		cost, _ := a.Cost.Float64()
		totalValue, _ := a.TotalValue.Float64()
		values := []any{
			a.InventoryNumber,
			a.Name,
			a.Description,
			reports.Label(reports.CategoryLabels, a.Category),
			reports.Label(reports.StatusLabels, a.Status),
			a.Quantity,
			cost,
			totalValue,
			a.SerialNumber,
			a.Supplier,
			purchaseDate,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", rowIdx, err)
			}
		}
	}

	// Fila de totales debajo de los datos.
	totalRow := len(report.Items) + 2
	totalLabel, _ := excelize.CoordinatesToCellName(7, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(8, totalRow)
	if err := f.SetCellValue(sheet, totalLabel, "TOTAL:"); err != nil {
		return nil, fmt.Errorf("excel: fila de totales: %w", err)
	}
	total, _ := report.TotalValue.Float64()
	if err := f.SetCellValue(sheet, totalCell, total); err != nil {
		return nil, fmt.Errorf("excel: fila de totales: %w", err)
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "C", 30)
	_ = f.SetColWidth(sheet, "D", "E", 16)
	_ = f.SetColWidth(sheet, "G", "H", 14)
	_ = f.SetColWidth(sheet, "I", "K", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderOperations genera el archivo .xlsx del reporte de operaciones.
func (e *Exporter) RenderOperations(report *dto.OperationReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Operaciones"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E7D32"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, h := range operationHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %q: %w", h, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(operationHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, op := range report.Items {
		rowIdx := i + 2
		values := []any{
			op.OperationDate.Format("02/01/2006 15:04"),
			reports.Label(reports.OperationLabels, op.Type),
			op.AssetID,
			op.Quantity,
			deref(op.FromWarehouseID),
			deref(op.ToWarehouseID),
			op.Reason,
			op.DocumentNumber,
			op.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", rowIdx, err)
			}
		}
	}

	// Fila resumen con el total de operaciones del rango.
	summaryRow := len(report.Items) + 2
	summaryCell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	if err := f.SetCellValue(sheet, summaryCell, fmt.Sprintf("Total de operaciones: %d", report.TotalCount)); err != nil {
		return nil, fmt.Errorf("excel: fila resumen: %w", err)
	}

	_ = f.SetColWidth(sheet, "A", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 38)
	_ = f.SetColWidth(sheet, "E", "F", 38)
	_ = f.SetColWidth(sheet, "G", "I", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
