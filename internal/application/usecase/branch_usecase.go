package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// BranchUseCase gestión de sucursales.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
	txRunner   AdminTxRunner
}

// NewBranchUseCase construye el caso de uso de sucursales.
func NewBranchUseCase(branchRepo repository.BranchRepository, txRunner AdminTxRunner) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo, txRunner: txRunner}
}

// Create crea una sucursal en la empresa del solicitante.
func (uc *BranchUseCase) Create(ctx context.Context, companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal de la empresa.
func (uc *BranchUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// List lista las sucursales activas de la empresa.
func (uc *BranchUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.BranchListResponse, error) {
	page.DefaultPage()
	list, err := uc.branchRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza nombre o dirección de una sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	branch.UpdatedAt = time.Now()
	if err := uc.branchRepo.Update(ctx, companyID, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Deactivate baja lógica de la sucursal con cascada explícita: en la misma
// transacción se desactivan sus bodegas y los activos que contienen.
func (uc *BranchUseCase) Deactivate(ctx context.Context, companyID, actorID, id string) error {
	branch, err := uc.branchRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunAdmin(ctx, func(
		_ repository.CompanyRepository,
		_ repository.UserRepository,
		branchRepo repository.BranchRepository,
		warehouseRepo repository.WarehouseRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := assetRepo.DeactivateByBranch(ctx, companyID, id); err != nil {
			return err
		}
		if err := warehouseRepo.DeactivateByBranch(ctx, companyID, id); err != nil {
			return err
		}
		if err := branchRepo.Deactivate(ctx, companyID, id); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:           uuid.New().String(),
			UserID:       actorID,
			CompanyID:    companyID,
			Action:       entity.AuditActionDeactivate,
			ResourceType: "Branch",
			ResourceID:   id,
			Timestamp:    time.Now(),
		})
	})
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
