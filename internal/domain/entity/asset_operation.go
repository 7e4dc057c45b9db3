package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación sobre activos.
const (
	OperationReceipt    = "receipt"    // recepción / entrada
	OperationTransfer   = "transfer"   // traslado entre bodegas
	OperationDisposal   = "disposal"   // baja definitiva
	OperationAdjustment = "adjustment" // corrección de valor
)

// OperationTypes lista cerrada de tipos de operación.
var OperationTypes = []string{OperationReceipt, OperationTransfer, OperationDisposal, OperationAdjustment}

// ValidOperationType indica si el string corresponde a un tipo conocido.
func ValidOperationType(t string) bool {
	for _, k := range OperationTypes {
		if t == k {
			return true
		}
	}
	return false
}

// AssetOperation es una entrada del libro de operaciones de un activo.
// Las filas son inmutables una vez creadas (ledger append-only); solo pueden
// desactivarse (is_active=false) como corrección administrativa.
type AssetOperation struct {
	ID              string
	Type            string // ver constantes Operation*
	AssetID         string
	Quantity        int
	FromWarehouseID *string
	ToWarehouseID   *string
	UserID          string
	OperationDate   time.Time
	Reason          string
	Notes           string
	DocumentNumber  string
	CostBefore      *decimal.Decimal // solo adjustment
	CostAfter       *decimal.Decimal // solo adjustment
	IsActive        bool
	CreatedAt       time.Time
}
