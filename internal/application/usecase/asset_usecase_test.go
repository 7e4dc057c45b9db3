package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/numbering"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubAssetRepo struct {
	assets    map[string]*entity.Asset
	companyOf map[string]string
	created   []*entity.Asset
	updateErr error
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: map[string]*entity.Asset{}, companyOf: map[string]string{}}
}

func (r *stubAssetRepo) put(companyID string, a *entity.Asset) {
	copia := *a
	r.assets[a.ID] = &copia
	r.companyOf[a.ID] = companyID
}

func (r *stubAssetRepo) Create(_ context.Context, a *entity.Asset) error {
	copia := *a
	r.assets[a.ID] = &copia
	r.created = append(r.created, &copia)
	return nil
}

func (r *stubAssetRepo) GetByID(_ context.Context, companyID, id string) (*entity.Asset, error) {
	a, ok := r.assets[id]
	if !ok || !a.IsActive {
		return nil, nil
	}
	if owner, tracked := r.companyOf[id]; tracked && owner != companyID {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *stubAssetRepo) Update(_ context.Context, _ string, a *entity.Asset) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	copia := *a
	r.assets[a.ID] = &copia
	return nil
}

func (r *stubAssetRepo) ListByCompany(context.Context, string, repository.AssetFilter, int, int) ([]*entity.Asset, error) {
	return nil, nil
}
func (r *stubAssetRepo) CountByCompany(context.Context, string, repository.AssetFilter) (int, error) {
	return 0, nil
}
func (r *stubAssetRepo) InventoryNumberExists(context.Context, string) (bool, error) {
	return false, nil
}

func (r *stubAssetRepo) Deactivate(_ context.Context, _, id string) error {
	if a, ok := r.assets[id]; ok {
		a.IsActive = false
	}
	return nil
}
func (r *stubAssetRepo) DeactivateByWarehouse(context.Context, string, string) error { return nil }
func (r *stubAssetRepo) DeactivateByBranch(context.Context, string, string) error    { return nil }
func (r *stubAssetRepo) DeactivateByCompany(context.Context, string) error           { return nil }

type stubWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *stubWarehouseRepo) GetByID(_ context.Context, companyID, id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok || w.CompanyID != companyID || !w.IsActive {
		return nil, nil
	}
	return w, nil
}

func (r *stubWarehouseRepo) Create(context.Context, *entity.Warehouse) error         { return nil }
func (r *stubWarehouseRepo) Update(context.Context, string, *entity.Warehouse) error { return nil }
func (r *stubWarehouseRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *stubWarehouseRepo) ListByBranch(context.Context, string, string) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *stubWarehouseRepo) Deactivate(context.Context, string, string) error         { return nil }
func (r *stubWarehouseRepo) DeactivateByBranch(context.Context, string, string) error { return nil }
func (r *stubWarehouseRepo) DeactivateByCompany(context.Context, string) error        { return nil }

type stubAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *stubAuditRepo) Create(_ context.Context, e *entity.AuditLog) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *stubAuditRepo) ListByCompany(context.Context, string, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
	actorID  = "user-1"
)

type assetFixture struct {
	uc        *usecase.AssetUseCase
	assetRepo *stubAssetRepo
	auditRepo *stubAuditRepo
}

func newAssetFixture() *assetFixture {
	assetRepo := newStubAssetRepo()
	auditRepo := &stubAuditRepo{}
	warehouseRepo := &stubWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-a1": {ID: "wh-a1", CompanyID: companyA, IsActive: true},
		"wh-a2": {ID: "wh-a2", CompanyID: companyA, IsActive: true},
		"wh-b1": {ID: "wh-b1", CompanyID: companyB, IsActive: true},
	}}
	allocator := numbering.NewAllocator(assetRepo)
	return &assetFixture{
		uc:        usecase.NewAssetUseCase(assetRepo, warehouseRepo, auditRepo, allocator),
		assetRepo: assetRepo,
		auditRepo: auditRepo,
	}
}

func createReq() dto.CreateAssetRequest {
	return dto.CreateAssetRequest{
		Name:        "Impresora industrial",
		Category:    entity.CategoryFixedAssets,
		Cost:        decimal.NewFromInt(1200),
		Quantity:    1,
		WarehouseID: "wh-a1",
	}
}

var inventoryNumberRe = regexp.MustCompile(`^INV-\d{8}-\d{4}$`)

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetCreate_AsignaNumeroYEstadoActivo(t *testing.T) {
	f := newAssetFixture()

	out, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)

	assert.Regexp(t, inventoryNumberRe, out.InventoryNumber,
		"el número de inventario lo asigna el sistema con formato INV-YYYYMMDD-XXXX")
	assert.Equal(t, entity.AssetStatusActive, out.Status)
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(1200)), "total = cost × quantity")
	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActionCreate, f.auditRepo.entries[0].Action)
}

func TestAssetCreate_BodegaDeOtraEmpresa(t *testing.T) {
	f := newAssetFixture()
	req := createReq()
	req.WarehouseID = "wh-b1"

	_, err := f.uc.Create(context.Background(), companyA, actorID, req)
	assert.ErrorIs(t, err, domain.ErrCrossTenantReference)
	assert.Empty(t, f.assetRepo.created, "no debe persistirse nada")
}

func TestAssetCreate_CategoriaDesconocida(t *testing.T) {
	f := newAssetFixture()
	req := createReq()
	req.Category = "vehiculos"

	_, err := f.uc.Create(context.Background(), companyA, actorID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetCreate_CostoNoPositivo(t *testing.T) {
	f := newAssetFixture()
	req := createReq()
	req.Cost = decimal.Zero

	_, err := f.uc.Create(context.Background(), companyA, actorID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetGetByID_OtraEmpresa_NotFound(t *testing.T) {
	f := newAssetFixture()
	f.assetRepo.put(companyB, &entity.Asset{
		ID: "asset-b", Name: "Ajeno", Category: entity.CategoryGoods,
		Cost: decimal.NewFromInt(10), Quantity: 1,
		Status: entity.AssetStatusActive, WarehouseID: "wh-b1", IsActive: true,
	})

	_, err := f.uc.GetByID(context.Background(), companyA, "asset-b")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un activo ajeno debe ser indistinguible de uno inexistente")
}

func TestAssetUpdate_ReasignaBodegaDentroDeLaEmpresa(t *testing.T) {
	f := newAssetFixture()
	out, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)

	destino := "wh-a2"
	updated, err := f.uc.Update(context.Background(), companyA, actorID, out.ID,
		dto.UpdateAssetRequest{WarehouseID: &destino})
	require.NoError(t, err)
	assert.Equal(t, "wh-a2", updated.WarehouseID)
}

func TestAssetUpdate_BodegaDeOtraEmpresa_NoMuta(t *testing.T) {
	f := newAssetFixture()
	out, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)

	ajena := "wh-b1"
	_, err = f.uc.Update(context.Background(), companyA, actorID, out.ID,
		dto.UpdateAssetRequest{WarehouseID: &ajena})
	assert.ErrorIs(t, err, domain.ErrCrossTenantReference)

	actual, err := f.uc.GetByID(context.Background(), companyA, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "wh-a1", actual.WarehouseID, "la bodega no debe haber cambiado")
}

// El activo se desactiva entre la lectura y el UPDATE: el repositorio reporta
// cero filas afectadas y la edición responde como inexistente, nunca como éxito.
func TestAssetUpdate_DesactivadoEnCarrera_NotFound(t *testing.T) {
	f := newAssetFixture()
	out, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)

	f.assetRepo.updateErr = domain.ErrNotFound
	nombre := "Impresora reasignada"
	_, err = f.uc.Update(context.Background(), companyA, actorID, out.ID,
		dto.UpdateAssetRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetBulkUpdate_ReportaFallosSinAbortar(t *testing.T) {
	f := newAssetFixture()
	a1, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)
	a2, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)

	nuevoNombre := "Etiquetado 2026"
	out, err := f.uc.BulkUpdate(context.Background(), companyA, actorID, dto.BulkUpdateAssetsRequest{
		AssetIDs: []string{a1.ID, "no-existe", a2.ID},
		Changes:  dto.UpdateAssetRequest{Name: &nuevoNombre},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Updated)
	assert.Equal(t, []string{"no-existe"}, out.Failed)

	actual, _ := f.uc.GetByID(context.Background(), companyA, a1.ID)
	assert.Equal(t, nuevoNombre, actual.Name)
}

func TestAssetDeactivate_Inexistente_NotFound(t *testing.T) {
	f := newAssetFixture()
	err := f.uc.Deactivate(context.Background(), companyA, actorID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetDeactivate_DejaDeResolver(t *testing.T) {
	f := newAssetFixture()
	out, err := f.uc.Create(context.Background(), companyA, actorID, createReq())
	require.NoError(t, err)

	require.NoError(t, f.uc.Deactivate(context.Background(), companyA, actorID, out.ID))

	_, err = f.uc.GetByID(context.Background(), companyA, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Queda auditoría de alta y de baja.
	var actions []string
	for _, e := range f.auditRepo.entries {
		actions = append(actions, e.Action)
	}
	assert.Contains(t, actions, entity.AuditActionDeactivate)
}
