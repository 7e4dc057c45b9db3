package numbering_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/numbering"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// claimingChecker simula el índice único de la DB: Exists reserva el número de
// forma atómica, así dos llamadas con el mismo candidato solo pueden "ganar" una.
type claimingChecker struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func newClaimingChecker() *claimingChecker {
	return &claimingChecker{claimed: make(map[string]bool)}
}

func (c *claimingChecker) InventoryNumberExists(_ context.Context, number string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.claimed[number] {
		return true, nil
	}
	c.claimed[number] = true
	return false, nil
}

// alwaysTakenChecker responde que todo número ya existe: fuerza el fallback.
type alwaysTakenChecker struct{}

func (alwaysTakenChecker) InventoryNumberExists(context.Context, string) (bool, error) {
	return true, nil
}

type failingChecker struct{ err error }

func (c failingChecker) InventoryNumberExists(context.Context, string) (bool, error) {
	return false, c.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

var shortFormat = regexp.MustCompile(`^INV-\d{8}-\d{4}$`)
var longFormat = regexp.MustCompile(`^INV-\d{8}-[0-9a-f]{12}$`)

func TestAllocate_FormatoNormal(t *testing.T) {
	alloc := numbering.NewAllocator(newClaimingChecker())

	number, err := alloc.Allocate(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, shortFormat, number,
		"el número debe tener el formato INV-YYYYMMDD-XXXX")
	assert.Contains(t, number, time.Now().Format("20060102"),
		"la parte de fecha debe ser el día actual")
}

func TestAllocate_FallbackCuandoTodoColisiona(t *testing.T) {
	alloc := numbering.NewAllocator(alwaysTakenChecker{})

	number, err := alloc.Allocate(context.Background())
	require.NoError(t, err,
		"agotar los reintentos no es un error: se cae al formato largo")
	assert.Regexp(t, longFormat, number,
		"el fallback usa un sufijo hex de 12 caracteres derivado de UUID")
}

func TestAllocate_PropagaErrorDelChecker(t *testing.T) {
	wantErr := errors.New("db caída")
	alloc := numbering.NewAllocator(failingChecker{err: wantErr})

	_, err := alloc.Allocate(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

// 1.000 asignaciones concurrentes contra el mismo verificador deben producir
// 1.000 números distintos.
func TestAllocate_ConcurrenciaSinDuplicados(t *testing.T) {
	const n = 1000
	checker := newClaimingChecker()
	alloc := numbering.NewAllocator(checker)

	results := make(chan string, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := alloc.Allocate(context.Background())
			if err != nil {
				errs <- err
				return
			}
			results <- number
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("asignación concurrente falló: %v", err)
	}

	seen := make(map[string]bool, n)
	for number := range results {
		if seen[number] {
			t.Fatalf("número duplicado: %s", number)
		}
		seen[number] = true
	}
	require.Len(t, seen, n, "deben asignarse exactamente %d números distintos", n)
}

func TestAllocate_FallbackTambienEsUnico(t *testing.T) {
	// Con el checker que siempre responde "tomado", todas las asignaciones
	// van al formato largo; aun así no deben repetirse entre sí.
	alloc := numbering.NewAllocator(alwaysTakenChecker{})
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := alloc.Allocate(context.Background())
		require.NoError(t, err)
		if seen[number] {
			t.Fatalf("fallback duplicado en iteración %d: %s", i, number)
		}
		seen[number] = true
	}
}
