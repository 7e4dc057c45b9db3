package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios dentro de una empresa. La autorización por
// rol (solo admin crea o modifica usuarios) vive en el middleware HTTP; aquí
// solo reglas de negocio.
type UserUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, auditRepo repository.AuditLogRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, auditRepo: auditRepo}
}

// Create crea un usuario en la empresa del admin que lo solicita. El email es
// único en todo el sistema; el conflicto devuelve ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(ctx context.Context, companyID, actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.audit(ctx, actorID, companyID, entity.AuditActionCreate, user.ID)
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario de la empresa.
func (uc *UserUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista los usuarios activos de la empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.userRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza nombre, rol o password de un usuario de la empresa.
func (uc *UserUseCase) Update(ctx context.Context, companyID, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, companyID, user); err != nil {
		return nil, err
	}
	uc.audit(ctx, actorID, companyID, entity.AuditActionUpdate, user.ID)
	return toUserResponse(user), nil
}

// Deactivate baja lógica de un usuario. Un admin no puede desactivarse a sí
// mismo: evita dejar la empresa sin administradores por accidente.
func (uc *UserUseCase) Deactivate(ctx context.Context, companyID, actorID, id string) error {
	if id == actorID {
		return fmt.Errorf("%w: no puede desactivar su propio usuario", domain.ErrConflict)
	}
	user, err := uc.userRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.userRepo.Deactivate(ctx, companyID, id); err != nil {
		return err
	}
	uc.audit(ctx, actorID, companyID, entity.AuditActionDeactivate, id)
	return nil
}

// audit registra el evento sin bloquear la operación principal: un fallo al
// auditar no deshace un cambio ya persistido.
func (uc *UserUseCase) audit(ctx context.Context, actorID, companyID, action, resourceID string) {
	_ = uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:           uuid.New().String(),
		UserID:       actorID,
		CompanyID:    companyID,
		Action:       action,
		ResourceType: "User",
		ResourceID:   resourceID,
		Timestamp:    time.Now(),
	})
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
