package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	txRunner    AdminTxRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y
// el runner transaccional.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, txRunner AdminTxRunner) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, txRunner: txRunner}
}

// Register crea una empresa junto con su usuario admin inicial en una sola
// transacción: nunca queda una empresa sin admin ni un admin sin empresa.
// Devuelve ErrCompanyAlreadyExists si el NIT ya está registrado.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	existing, err := uc.companyRepo.GetByNIT(ctx, in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCompanyAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Email:     in.Email,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        in.AdminEmail,
		Name:         in.AdminName,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunAdmin(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		_ repository.BranchRepository,
		_ repository.WarehouseRepository,
		_ repository.AssetRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := companyRepo.Create(ctx, company); err != nil {
			return err
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:           uuid.New().String(),
			UserID:       admin.ID,
			CompanyID:    company.ID,
			Action:       entity.AuditActionCreate,
			ResourceType: "Company",
			ResourceID:   company.ID,
			Timestamp:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterCompanyResponse{
		Company: *toCompanyResponse(company),
		Admin:   *toUserResponse(admin),
	}, nil
}

// Get obtiene la empresa del usuario autenticado.
func (uc *CompanyUseCase) Get(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update actualiza los datos mutables de la empresa. El NIT nunca cambia.
func (uc *CompanyUseCase) Update(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Deactivate cierra la empresa: baja lógica de la empresa y de todos sus
// usuarios, sucursales, bodegas y activos, en una sola transacción. El libro
// de operaciones y la auditoría quedan intactos como historial.
func (uc *CompanyUseCase) Deactivate(ctx context.Context, companyID, userID string) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.RunAdmin(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		branchRepo repository.BranchRepository,
		warehouseRepo repository.WarehouseRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		// De las hojas hacia la raíz, para que ningún hijo quede activo si
		// el commit no llega a la empresa.
		if err := assetRepo.DeactivateByCompany(ctx, companyID); err != nil {
			return err
		}
		if err := warehouseRepo.DeactivateByCompany(ctx, companyID); err != nil {
			return err
		}
		if err := branchRepo.DeactivateByCompany(ctx, companyID); err != nil {
			return err
		}
		if err := userRepo.DeactivateByCompany(ctx, companyID); err != nil {
			return err
		}
		if err := companyRepo.Deactivate(ctx, companyID); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:           uuid.New().String(),
			UserID:       userID,
			CompanyID:    companyID,
			Action:       entity.AuditActionDeactivate,
			ResourceType: "Company",
			ResourceID:   companyID,
			Timestamp:    now,
		})
	})
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIT:       c.NIT,
		Email:     c.Email,
		Address:   c.Address,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
