package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes administrativos: registran las cascadas de cierre de empresa
// ──────────────────────────────────────────────────────────────────────────────

type stubCompanyRepo struct {
	companies   map[string]*entity.Company
	deactivated []string
}

func (r *stubCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *stubCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *stubCompanyRepo) GetByNIT(_ context.Context, nit string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCompanyRepo) Update(context.Context, *entity.Company) error { return nil }

func (r *stubCompanyRepo) Deactivate(_ context.Context, id string) error {
	if c, ok := r.companies[id]; ok {
		c.IsActive = false
	}
	r.deactivated = append(r.deactivated, id)
	return nil
}

type stubUserRepo struct {
	byCompany []string
}

func (r *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *stubUserRepo) GetByID(context.Context, string, string) (*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (r *stubUserRepo) Update(context.Context, string, *entity.User) error        { return nil }
func (r *stubUserRepo) UpdateLastLogin(context.Context, string, time.Time) error  { return nil }
func (r *stubUserRepo) ListByCompany(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Deactivate(context.Context, string, string) error { return nil }
func (r *stubUserRepo) DeactivateByCompany(_ context.Context, companyID string) error {
	r.byCompany = append(r.byCompany, companyID)
	return nil
}

type stubBranchRepo struct {
	byCompany []string
}

func (r *stubBranchRepo) Create(context.Context, *entity.Branch) error { return nil }
func (r *stubBranchRepo) GetByID(context.Context, string, string) (*entity.Branch, error) {
	return nil, nil
}
func (r *stubBranchRepo) Update(context.Context, string, *entity.Branch) error { return nil }
func (r *stubBranchRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Branch, error) {
	return nil, nil
}
func (r *stubBranchRepo) Deactivate(context.Context, string, string) error { return nil }
func (r *stubBranchRepo) DeactivateByCompany(_ context.Context, companyID string) error {
	r.byCompany = append(r.byCompany, companyID)
	return nil
}

// cascadeAssetRepo y cascadeWarehouseRepo extienden los stubs con registro de
// la cascada por empresa.
type cascadeAssetRepo struct {
	*stubAssetRepo
	byCompany []string
}

func (r *cascadeAssetRepo) DeactivateByCompany(_ context.Context, companyID string) error {
	r.byCompany = append(r.byCompany, companyID)
	return nil
}

type cascadeWarehouseRepo struct {
	*stubWarehouseRepo
	byCompany []string
}

func (r *cascadeWarehouseRepo) DeactivateByCompany(_ context.Context, companyID string) error {
	r.byCompany = append(r.byCompany, companyID)
	return nil
}

// passthroughAdminRunner entrega los fakes directamente: el caso de uso valida
// antes de mutar, así que no hace falta rollback real.
type passthroughAdminRunner struct {
	companyRepo   *stubCompanyRepo
	userRepo      *stubUserRepo
	branchRepo    *stubBranchRepo
	warehouseRepo *cascadeWarehouseRepo
	assetRepo     *cascadeAssetRepo
	auditRepo     *stubAuditRepo
}

func (r *passthroughAdminRunner) RunAdmin(_ context.Context, fn func(
	repository.CompanyRepository,
	repository.UserRepository,
	repository.BranchRepository,
	repository.WarehouseRepository,
	repository.AssetRepository,
	repository.AuditLogRepository,
) error) error {
	return fn(r.companyRepo, r.userRepo, r.branchRepo, r.warehouseRepo, r.assetRepo, r.auditRepo)
}

type companyFixture struct {
	uc          *usecase.CompanyUseCase
	companyRepo *stubCompanyRepo
	userRepo    *stubUserRepo
	branchRepo  *stubBranchRepo
	whRepo      *cascadeWarehouseRepo
	assetRepo   *cascadeAssetRepo
	auditRepo   *stubAuditRepo
}

func newCompanyFixture() *companyFixture {
	companyRepo := &stubCompanyRepo{companies: map[string]*entity.Company{
		companyA: {ID: companyA, Name: "Aceros del Sur", NIT: "900123456-1", IsActive: true},
	}}
	runner := &passthroughAdminRunner{
		companyRepo:   companyRepo,
		userRepo:      &stubUserRepo{},
		branchRepo:    &stubBranchRepo{},
		warehouseRepo: &cascadeWarehouseRepo{stubWarehouseRepo: &stubWarehouseRepo{}},
		assetRepo:     &cascadeAssetRepo{stubAssetRepo: newStubAssetRepo()},
		auditRepo:     &stubAuditRepo{},
	}
	return &companyFixture{
		uc:          usecase.NewCompanyUseCase(companyRepo, runner),
		companyRepo: companyRepo,
		userRepo:    runner.userRepo,
		branchRepo:  runner.branchRepo,
		whRepo:      runner.warehouseRepo,
		assetRepo:   runner.assetRepo,
		auditRepo:   runner.auditRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El cierre de empresa desactiva a la empresa y a todos sus usuarios,
// sucursales, bodegas y activos.
func TestCompanyDeactivate_CascadaCompleta(t *testing.T) {
	f := newCompanyFixture()

	err := f.uc.Deactivate(context.Background(), companyA, actorID)
	require.NoError(t, err)

	assert.False(t, f.companyRepo.companies[companyA].IsActive, "la empresa debe quedar inactiva")
	assert.Equal(t, []string{companyA}, f.assetRepo.byCompany, "los activos deben desactivarse en cascada")
	assert.Equal(t, []string{companyA}, f.whRepo.byCompany, "las bodegas deben desactivarse en cascada")
	assert.Equal(t, []string{companyA}, f.branchRepo.byCompany, "las sucursales deben desactivarse en cascada")
	assert.Equal(t, []string{companyA}, f.userRepo.byCompany, "los usuarios deben desactivarse en cascada")

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActionDeactivate, f.auditRepo.entries[0].Action)
	assert.Equal(t, "Company", f.auditRepo.entries[0].ResourceType)
	assert.Equal(t, companyA, f.auditRepo.entries[0].ResourceID)
}

func TestCompanyDeactivate_EmpresaInexistente(t *testing.T) {
	f := newCompanyFixture()

	err := f.uc.Deactivate(context.Background(), "no-existe", actorID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.assetRepo.byCompany, "sin empresa no debe correr ninguna cascada")
	assert.Empty(t, f.auditRepo.entries)
}
