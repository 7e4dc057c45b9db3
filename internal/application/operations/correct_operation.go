package operations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// CorrectOperationUseCase corrección administrativa del libro: las filas nunca
// se editan ni se borran, solo se marcan inactivas. El efecto que la operación
// tuvo sobre el activo no se revierte.
type CorrectOperationUseCase struct {
	opRepo    repository.AssetOperationRepository
	auditRepo repository.AuditLogRepository
}

// NewCorrectOperationUseCase construye el caso de uso de corrección.
func NewCorrectOperationUseCase(opRepo repository.AssetOperationRepository, auditRepo repository.AuditLogRepository) *CorrectOperationUseCase {
	return &CorrectOperationUseCase{opRepo: opRepo, auditRepo: auditRepo}
}

// Deactivate marca una operación como inactiva bajo el filtro de empresa.
// Una operación de otra empresa es indistinguible de una inexistente.
func (uc *CorrectOperationUseCase) Deactivate(ctx context.Context, companyID, userID, id string) (*dto.OperationResponse, error) {
	op, err := uc.opRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.opRepo.Deactivate(ctx, companyID, id); err != nil {
		return nil, err
	}
	op.IsActive = false

	_ = uc.auditRepo.Create(ctx, &entity.AuditLog{
		ID:           uuid.New().String(),
		UserID:       userID,
		CompanyID:    companyID,
		Action:       entity.AuditActionDeactivate,
		ResourceType: "AssetOperation",
		ResourceID:   op.ID,
		Timestamp:    time.Now(),
	})
	return ToOperationResponse(op), nil
}
