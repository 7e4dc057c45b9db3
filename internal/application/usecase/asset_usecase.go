package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/numbering"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AssetUseCase gestión del ciclo de vida administrativo de activos: alta,
// consulta, edición y baja lógica. Los cambios de estado y valor van por el
// motor de operaciones, no por aquí.
type AssetUseCase struct {
	assetRepo     repository.AssetRepository
	warehouseRepo repository.WarehouseRepository
	auditRepo     repository.AuditLogRepository
	allocator     *numbering.Allocator
}

// NewAssetUseCase construye el caso de uso de activos.
func NewAssetUseCase(
	assetRepo repository.AssetRepository,
	warehouseRepo repository.WarehouseRepository,
	auditRepo repository.AuditLogRepository,
	allocator *numbering.Allocator,
) *AssetUseCase {
	return &AssetUseCase{
		assetRepo:     assetRepo,
		warehouseRepo: warehouseRepo,
		auditRepo:     auditRepo,
		allocator:     allocator,
	}
}

// Create da de alta un activo: valida categoría, costo y bodega, asigna el
// número de inventario y persiste. Una bodega de otra empresa devuelve
// ErrCrossTenantReference sin revelar si existe.
func (uc *AssetUseCase) Create(ctx context.Context, companyID, actorID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	if !in.Cost.IsPositive() {
		return nil, fmt.Errorf("%w: cost debe ser > 0", domain.ErrInvalidInput)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity debe ser >= 1", domain.ErrInvalidInput)
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, companyID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrCrossTenantReference
	}

	number, err := uc.allocator.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:              uuid.New().String(),
		InventoryNumber: number,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Cost:            in.Cost,
		Quantity:        in.Quantity,
		Status:          entity.AssetStatusActive,
		WarehouseID:     in.WarehouseID,
		SerialNumber:    in.SerialNumber,
		PurchaseDate:    in.PurchaseDate,
		WarrantyUntil:   in.WarrantyUntil,
		Supplier:        in.Supplier,
		Notes:           in.Notes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	uc.audit(ctx, actorID, companyID, entity.AuditActionCreate, asset.ID)
	return ToAssetResponse(asset), nil
}

// GetByID obtiene un activo de la empresa. Un activo ajeno es ErrNotFound,
// indistinguible de uno inexistente.
func (uc *AssetUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return ToAssetResponse(asset), nil
}

// List lista activos de la empresa con filtros y total de la misma consulta.
func (uc *AssetUseCase) List(ctx context.Context, companyID string, in dto.AssetFilterRequest, page dto.PageRequest) (*dto.AssetListResponse, error) {
	page.DefaultPage()
	filter := repository.AssetFilter{
		Search:      in.Search,
		Category:    in.Category,
		Status:      in.Status,
		WarehouseID: in.WarehouseID,
	}
	list, err := uc.assetRepo.ListByCompany(ctx, companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.assetRepo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *ToAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update actualiza los campos descriptivos de un activo. Si reasigna la
// bodega, la nueva se revalida contra la empresa igual que en Create.
func (uc *AssetUseCase) Update(ctx context.Context, companyID, actorID, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyAssetChanges(ctx, uc.warehouseRepo, companyID, asset, in); err != nil {
		return nil, err
	}
	asset.UpdatedAt = time.Now()
	if err := uc.assetRepo.Update(ctx, companyID, asset); err != nil {
		return nil, err
	}
	uc.audit(ctx, actorID, companyID, entity.AuditActionUpdate, asset.ID)
	return ToAssetResponse(asset), nil
}

// BulkUpdate aplica los mismos cambios a varios activos. Los IDs que no
// resuelven dentro de la empresa se reportan en Failed sin abortar el resto.
func (uc *AssetUseCase) BulkUpdate(ctx context.Context, companyID, actorID string, in dto.BulkUpdateAssetsRequest) (*dto.BulkUpdateAssetsResponse, error) {
	out := &dto.BulkUpdateAssetsResponse{}
	for _, id := range in.AssetIDs {
		if _, err := uc.Update(ctx, companyID, actorID, id, in.Changes); err != nil {
			out.Failed = append(out.Failed, id)
			continue
		}
		out.Updated++
	}
	return out, nil
}

// Deactivate baja lógica de un activo.
func (uc *AssetUseCase) Deactivate(ctx context.Context, companyID, actorID, id string) error {
	asset, err := uc.assetRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	if err := uc.assetRepo.Deactivate(ctx, companyID, id); err != nil {
		return err
	}
	uc.audit(ctx, actorID, companyID, entity.AuditActionDeactivate, id)
	return nil
}

func applyAssetChanges(ctx context.Context, warehouseRepo repository.WarehouseRepository, companyID string, asset *entity.Asset, in dto.UpdateAssetRequest) error {
	if in.WarehouseID != nil && *in.WarehouseID != asset.WarehouseID {
		warehouse, err := warehouseRepo.GetByID(ctx, companyID, *in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrCrossTenantReference
		}
		asset.WarehouseID = *in.WarehouseID
	}
	if in.Name != nil {
		asset.Name = *in.Name
	}
	if in.Description != nil {
		asset.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *in.Category)
		}
		asset.Category = *in.Category
	}
	if in.SerialNumber != nil {
		asset.SerialNumber = *in.SerialNumber
	}
	if in.PurchaseDate != nil {
		asset.PurchaseDate = in.PurchaseDate
	}
	if in.WarrantyUntil != nil {
		asset.WarrantyUntil = in.WarrantyUntil
	}
	if in.Supplier != nil {
		asset.Supplier = *in.Supplier
	}
	if in.Notes != nil {
		asset.Notes = *in.Notes
	}
	return nil
}

func (uc *AssetUseCase) audit(ctx context.Context, actorID, companyID, action, resourceID string) {
	_ = uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:           uuid.New().String(),
		UserID:       actorID,
		CompanyID:    companyID,
		Action:       action,
		ResourceType: "Asset",
		ResourceID:   resourceID,
		Timestamp:    time.Now(),
	})
}

// ToAssetResponse convierte la entidad a DTO de salida. Lo reutiliza el
// paquete de reportes.
func ToAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:              a.ID,
		InventoryNumber: a.InventoryNumber,
		Name:            a.Name,
		Description:     a.Description,
		Category:        a.Category,
		Cost:            a.Cost,
		Quantity:        a.Quantity,
		TotalValue:      a.TotalValue(),
		Status:          a.Status,
		WarehouseID:     a.WarehouseID,
		SerialNumber:    a.SerialNumber,
		PurchaseDate:    a.PurchaseDate,
		WarrantyUntil:   a.WarrantyUntil,
		Supplier:        a.Supplier,
		Notes:           a.Notes,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
