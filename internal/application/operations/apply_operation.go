// Package operations implementa el motor de operaciones sobre activos:
// recepción, traslado, baja y ajuste de valor. Cada operación muta el activo
// y deja una fila inmutable en el libro, dentro de la misma transacción.
package operations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ApplyOperationUseCase registra una operación y aplica su efecto al activo.
type ApplyOperationUseCase struct {
	assetRepo     repository.AssetRepository
	warehouseRepo repository.WarehouseRepository
	txRunner      TxRunner
}

// NewApplyOperationUseCase construye el caso de uso. assetRepo y
// warehouseRepo se usan solo para validación previa; la mutación ocurre con
// los repos de la transacción.
func NewApplyOperationUseCase(
	assetRepo repository.AssetRepository,
	warehouseRepo repository.WarehouseRepository,
	txRunner TxRunner,
) *ApplyOperationUseCase {
	return &ApplyOperationUseCase{assetRepo: assetRepo, warehouseRepo: warehouseRepo, txRunner: txRunner}
}

// Apply valida la solicitud, ejecuta el efecto del tipo de operación sobre el
// activo y persiste activo mutado + fila del libro + auditoría en una sola
// transacción. Toda validación ocurre antes de mutar: una solicitud inválida
// deja el activo exactamente como estaba.
func (uc *ApplyOperationUseCase) Apply(ctx context.Context, companyID, userID string, in dto.ApplyOperationRequest) (*dto.OperationResponse, error) {
	if !entity.ValidOperationType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de operación desconocido %q", domain.ErrInvalidInput, in.Type)
	}

	asset, err := uc.assetRepo.GetByID(ctx, companyID, in.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.validateByType(ctx, companyID, asset, in); err != nil {
		return nil, err
	}

	now := time.Now()
	opDate := now
	if in.OperationDate != nil {
		opDate = *in.OperationDate
	}
	op := &entity.AssetOperation{
		ID:             uuid.New().String(),
		Type:           in.Type,
		AssetID:        asset.ID,
		UserID:         userID,
		OperationDate:  opDate,
		Reason:         in.Reason,
		Notes:          in.Notes,
		DocumentNumber: in.DocumentNumber,
		IsActive:       true,
		CreatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		opRepo repository.AssetOperationRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		// Se vuelve a resolver el activo dentro de la transacción para no
		// aplicar el efecto sobre una copia desactualizada.
		current, err := assetRepo.GetByID(ctx, companyID, asset.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		// Solo la baja exige que el activo siga activo; recepciones y
		// ajustes sobre un activo dado de baja son constancias válidas.
		if in.Type == entity.OperationDisposal && current.Status == entity.AssetStatusDisposed {
			return domain.ErrAssetAlreadyDisposed
		}

		applyEffect(current, op, in)
		current.UpdatedAt = now

		if err := assetRepo.Update(ctx, companyID, current); err != nil {
			return err
		}
		if err := opRepo.Create(ctx, op); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:           uuid.New().String(),
			UserID:       userID,
			CompanyID:    companyID,
			Action:       entity.AuditActionCreate,
			ResourceType: "AssetOperation",
			ResourceID:   op.ID,
			Timestamp:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return ToOperationResponse(op), nil
}

// validateByType aplica las reglas por tipo antes de cualquier mutación.
func (uc *ApplyOperationUseCase) validateByType(ctx context.Context, companyID string, asset *entity.Asset, in dto.ApplyOperationRequest) error {
	switch in.Type {
	case entity.OperationReceipt:
		if in.Quantity < 1 {
			return fmt.Errorf("%w: receipt exige quantity >= 1", domain.ErrInvalidInput)
		}
	case entity.OperationTransfer:
		if in.ToWarehouseID == nil || *in.ToWarehouseID == "" {
			return fmt.Errorf("%w: transfer exige to_warehouse_id", domain.ErrInvalidInput)
		}
		target, err := uc.warehouseRepo.GetByID(ctx, companyID, *in.ToWarehouseID)
		if err != nil {
			return err
		}
		if target == nil {
			// Bodega inexistente o de otra empresa: misma respuesta.
			return domain.ErrCrossTenantReference
		}
	case entity.OperationDisposal:
		if asset.Status == entity.AssetStatusDisposed {
			return domain.ErrAssetAlreadyDisposed
		}
	case entity.OperationAdjustment:
		// new_cost es opcional: sin él la operación solo deja constancia.
		if in.NewCost != nil && !in.NewCost.IsPositive() {
			return fmt.Errorf("%w: new_cost debe ser > 0", domain.ErrInvalidInput)
		}
	}
	return nil
}

// applyEffect muta el activo según el tipo y completa los campos derivados de
// la fila del libro. Se llama solo después de validar.
func applyEffect(asset *entity.Asset, op *entity.AssetOperation, in dto.ApplyOperationRequest) {
	switch in.Type {
	case entity.OperationReceipt:
		// Recepción: solo deja constancia en el libro, el activo ya existe.
		op.Quantity = in.Quantity
		to := asset.WarehouseID
		op.ToWarehouseID = &to
	case entity.OperationTransfer:
		op.Quantity = asset.Quantity
		from := asset.WarehouseID
		op.FromWarehouseID = &from
		op.ToWarehouseID = in.ToWarehouseID
		asset.WarehouseID = *in.ToWarehouseID
	case entity.OperationDisposal:
		op.Quantity = asset.Quantity
		from := asset.WarehouseID
		op.FromWarehouseID = &from
		asset.Status = entity.AssetStatusDisposed
	case entity.OperationAdjustment:
		op.Quantity = asset.Quantity
		if in.NewCost != nil {
			before := asset.Cost
			after := *in.NewCost
			op.CostBefore = &before
			op.CostAfter = &after
			asset.Cost = after
		}
	}
}

// ToOperationResponse convierte la entidad a DTO de salida.
func ToOperationResponse(op *entity.AssetOperation) *dto.OperationResponse {
	if op == nil {
		return nil
	}
	return &dto.OperationResponse{
		ID:              op.ID,
		Type:            op.Type,
		AssetID:         op.AssetID,
		Quantity:        op.Quantity,
		FromWarehouseID: op.FromWarehouseID,
		ToWarehouseID:   op.ToWarehouseID,
		UserID:          op.UserID,
		OperationDate:   op.OperationDate,
		Reason:          op.Reason,
		Notes:           op.Notes,
		DocumentNumber:  op.DocumentNumber,
		CostBefore:      op.CostBefore,
		CostAfter:       op.CostAfter,
		CreatedAt:       op.CreatedAt,
	}
}
