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

// WarehouseUseCase gestión de bodegas.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	branchRepo    repository.BranchRepository
	txRunner      AdminTxRunner
}

// NewWarehouseUseCase construye el caso de uso de bodegas.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, branchRepo repository.BranchRepository, txRunner AdminTxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, branchRepo: branchRepo, txRunner: txRunner}
}

// Create crea una bodega. La sucursal debe existir en la empresa del
// solicitante; una sucursal ajena devuelve ErrCrossTenantReference.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, companyID, in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrCrossTenantReference
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		BranchID:  in.BranchID,
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega de la empresa.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista las bodegas activas de la empresa; acepta filtro por sucursal.
func (uc *WarehouseUseCase) List(ctx context.Context, companyID, branchID string, page dto.PageRequest) (*dto.WarehouseListResponse, error) {
	page.DefaultPage()
	var list []*entity.Warehouse
	var err error
	if branchID != "" {
		list, err = uc.warehouseRepo.ListByBranch(ctx, companyID, branchID)
	} else {
		list, err = uc.warehouseRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza nombre o dirección de una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(ctx, companyID, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Deactivate baja lógica de la bodega con cascada explícita sobre sus activos,
// todo en una transacción.
func (uc *WarehouseUseCase) Deactivate(ctx context.Context, companyID, actorID, id string) error {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunAdmin(ctx, func(
		_ repository.CompanyRepository,
		_ repository.UserRepository,
		_ repository.BranchRepository,
		warehouseRepo repository.WarehouseRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := assetRepo.DeactivateByWarehouse(ctx, companyID, id); err != nil {
			return err
		}
		if err := warehouseRepo.Deactivate(ctx, companyID, id); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:           uuid.New().String(),
			UserID:       actorID,
			CompanyID:    companyID,
			Action:       entity.AuditActionDeactivate,
			ResourceType: "Warehouse",
			ResourceID:   id,
			Timestamp:    time.Now(),
		})
	})
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		BranchID:  w.BranchID,
		Name:      w.Name,
		Address:   w.Address,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
