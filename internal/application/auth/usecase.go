// Package auth implementa el login. El registro de usuarios vive en usecase
// (solo un admin crea usuarios) y el de empresas en CompanyUseCase.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	auditRepo   repository.AuditLogRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, auditRepo repository.AuditLogRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, auditRepo: auditRepo, jwtCfg: jwtCfg}
}

// Login verifica credenciales y devuelve un token con user_id, company_id y
// rol. Email inexistente y password incorrecto devuelven el mismo
// ErrUnauthorized: la respuesta no revela si la cuenta existe.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// Empresa desactivada: sus usuarios pierden acceso aunque sigan activos.
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, now); err == nil {
		user.LastLogin = &now
	}
	_ = uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		CompanyID:    user.CompanyID,
		Action:       entity.AuditActionLogin,
		ResourceType: "User",
		ResourceID:   user.ID,
		Timestamp:    now,
	})

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			CompanyID: user.CompanyID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			IsActive:  user.IsActive,
			LastLogin: user.LastLogin,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
