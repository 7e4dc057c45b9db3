package operations

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ListOperationsUseCase lectura del libro de operaciones.
type ListOperationsUseCase struct {
	opRepo repository.AssetOperationRepository
}

// NewListOperationsUseCase construye el caso de uso de lectura.
func NewListOperationsUseCase(opRepo repository.AssetOperationRepository) *ListOperationsUseCase {
	return &ListOperationsUseCase{opRepo: opRepo}
}

// List lista operaciones de la empresa, más recientes primero, con filtros y
// total que replica el mismo predicado.
func (uc *ListOperationsUseCase) List(ctx context.Context, companyID string, in dto.OperationFilterRequest, page dto.PageRequest) (*dto.OperationListResponse, error) {
	page.DefaultPage()
	filter := repository.OperationFilter{
		Type:     in.Type,
		AssetID:  in.AssetID,
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
	}
	list, err := uc.opRepo.ListByCompany(ctx, companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.opRepo.CountByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperationResponse, 0, len(list))
	for _, op := range list {
		items = append(items, *ToOperationResponse(op))
	}
	return &dto.OperationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene una operación de la empresa.
func (uc *ListOperationsUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.OperationResponse, error) {
	op, err := uc.opRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	return ToOperationResponse(op), nil
}
