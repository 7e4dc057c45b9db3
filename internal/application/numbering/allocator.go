// Package numbering asigna números de inventario únicos a los activos.
//
// El formato normal es INV-YYYYMMDD-XXXX con cuatro dígitos aleatorios. La
// unicidad real la garantiza el índice único de la base de datos; la
// verificación previa solo reduce la probabilidad de chocar contra él.
package numbering

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxAttempts intentos de verificación antes de caer al formato largo.
const maxAttempts = 5

// NumberChecker consulta si un número de inventario ya está en uso.
// Lo implementa el repositorio de activos.
type NumberChecker interface {
	InventoryNumberExists(ctx context.Context, inventoryNumber string) (bool, error)
}

// Allocator genera números de inventario candidatos.
type Allocator struct {
	checker NumberChecker
	now     func() time.Time
}

// NewAllocator construye el asignador sobre el verificador de unicidad.
func NewAllocator(checker NumberChecker) *Allocator {
	return &Allocator{checker: checker, now: time.Now}
}

// Allocate devuelve un número de inventario que no estaba en uso al momento
// de la verificación. Tras maxAttempts colisiones cae a un sufijo derivado de
// UUID (128 bits de aleatoriedad) que se devuelve sin verificar: la colisión
// ahí es despreciable y el índice único sigue siendo la última línea de
// defensa.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	date := a.now().Format("20060102")
	for i := 0; i < maxAttempts; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", fmt.Errorf("random suffix: %w", err)
		}
		candidate := fmt.Sprintf("INV-%s-%04d", date, n.Int64())
		exists, err := a.checker.InventoryNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check inventory number: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("INV-%s-%s", date, suffix), nil
}
