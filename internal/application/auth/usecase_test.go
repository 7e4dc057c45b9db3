package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Activos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail    map[string]*entity.User
	lastLogins map[string]time.Time
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if r.lastLogins == nil {
		r.lastLogins = map[string]time.Time{}
	}
	r.lastLogins[id] = at
	return nil
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(context.Context, string, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(context.Context, string, *entity.User) error { return nil }
func (r *fakeUserRepo) ListByCompany(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Deactivate(context.Context, string, string) error { return nil }
func (r *fakeUserRepo) DeactivateByCompany(context.Context, string) error { return nil }

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok || !c.IsActive {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCompanyRepo) Create(context.Context, *entity.Company) error { return nil }
func (r *fakeCompanyRepo) GetByNIT(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) Update(context.Context, *entity.Company) error { return nil }
func (r *fakeCompanyRepo) Deactivate(context.Context, string) error      { return nil }

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(_ context.Context, e *entity.AuditLog) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *fakeAuditRepo) ListByCompany(context.Context, string, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	loginEmail    = "ana@acme.co"
	loginPassword = "Clave$egura123"
	loginSecret   = "test-secret-key-for-unit-tests"
)

type loginFixture struct {
	uc        *auth.UseCase
	userRepo  *fakeUserRepo
	auditRepo *fakeAuditRepo
}

func newLoginFixture(t *testing.T, mutate func(u *entity.User)) *loginFixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(loginPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:           "user-1",
		CompanyID:    "company-a",
		Email:        loginEmail,
		Name:         "Ana",
		PasswordHash: string(hash),
		Role:         entity.RoleContador,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if mutate != nil {
		mutate(user)
	}

	userRepo := &fakeUserRepo{byEmail: map[string]*entity.User{user.Email: user}}
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		"company-a": {ID: "company-a", Name: "Acme", NIT: "900123456-7", IsActive: true},
	}}
	auditRepo := &fakeAuditRepo{}
	uc := auth.NewUseCase(userRepo, companyRepo, auditRepo, auth.JWTConfig{
		Secret:     loginSecret,
		ExpMinutes: 60,
		Issuer:     "activos-api-test",
	})
	return &loginFixture{uc: uc, userRepo: userRepo, auditRepo: auditRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	f := newLoginFixture(t, nil)

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El token debe llevar user_id, company_id y rol.
	userID, companyID, role, err := pkgjwt.Parse(loginSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "company-a", companyID)
	assert.Equal(t, entity.RoleContador, role)

	assert.Equal(t, loginEmail, out.User.Email)
	assert.Equal(t, entity.RoleContador, out.User.Role)

	// Efectos colaterales: last_login y auditoría LOGIN.
	assert.Contains(t, f.userRepo.lastLogins, "user-1")
	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActionLogin, f.auditRepo.entries[0].Action)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	f := newLoginFixture(t, nil)

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email:    loginEmail,
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, f.auditRepo.entries, "un login fallido no deja entrada LOGIN")
}

// Email inexistente y password incorrecto devuelven el mismo error: la
// respuesta no debe revelar si la cuenta existe.
func TestLogin_EmailInexistente_MismoError(t *testing.T) {
	f := newLoginFixture(t, nil)

	_, errEmail := f.uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@acme.co",
		Password: loginPassword,
	})
	_, errPass := f.uc.Login(context.Background(), dto.LoginRequest{
		Email:    loginEmail,
		Password: "otra-clave",
	})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPass, "ambos fallos deben ser indistinguibles")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	f := newLoginFixture(t, func(u *entity.User) { u.IsActive = false })

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_EmpresaDesactivada(t *testing.T) {
	f := newLoginFixture(t, func(u *entity.User) { u.CompanyID = "company-baja" })

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email:    loginEmail,
		Password: loginPassword,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"usuarios de una empresa desactivada pierden acceso")
}
