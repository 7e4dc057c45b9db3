package operations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/operations"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ledgerOpRepo fake del libro con scope por empresa: una fila inactiva o de
// otra empresa no se encuentra.
type ledgerOpRepo struct {
	ops       map[string]*entity.AssetOperation
	companyOf map[string]string
}

func newLedgerOpRepo() *ledgerOpRepo {
	return &ledgerOpRepo{ops: map[string]*entity.AssetOperation{}, companyOf: map[string]string{}}
}

func (r *ledgerOpRepo) put(companyID string, op *entity.AssetOperation) {
	copia := *op
	r.ops[op.ID] = &copia
	r.companyOf[op.ID] = companyID
}

func (r *ledgerOpRepo) Create(_ context.Context, op *entity.AssetOperation) error {
	copia := *op
	r.ops[op.ID] = &copia
	return nil
}

func (r *ledgerOpRepo) GetByID(_ context.Context, companyID, id string) (*entity.AssetOperation, error) {
	op, ok := r.ops[id]
	if !ok || r.companyOf[id] != companyID || !op.IsActive {
		return nil, nil
	}
	copia := *op
	return &copia, nil
}

func (r *ledgerOpRepo) ListByCompany(context.Context, string, repository.OperationFilter, int, int) ([]*entity.AssetOperation, error) {
	return nil, nil
}
func (r *ledgerOpRepo) CountByCompany(context.Context, string, repository.OperationFilter) (int, error) {
	return 0, nil
}

func (r *ledgerOpRepo) Deactivate(_ context.Context, companyID, id string) error {
	if op, ok := r.ops[id]; ok && r.companyOf[id] == companyID {
		op.IsActive = false
	}
	return nil
}

func operacionDePrueba(id string) *entity.AssetOperation {
	return &entity.AssetOperation{
		ID:            id,
		Type:          entity.OperationReceipt,
		AssetID:       "asset-1",
		Quantity:      1,
		UserID:        actorID,
		OperationDate: time.Now(),
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
}

// La corrección marca la fila como inactiva sin borrarla y deja auditoría.
func TestCorrect_DeactivateMarcaInactiva(t *testing.T) {
	opRepo := newLedgerOpRepo()
	auditRepo := &memAuditRepo{}
	opRepo.put(empresaA, operacionDePrueba("op-1"))
	uc := operations.NewCorrectOperationUseCase(opRepo, auditRepo)

	out, err := uc.Deactivate(context.Background(), empresaA, actorID, "op-1")
	require.NoError(t, err)
	assert.Equal(t, "op-1", out.ID)

	assert.False(t, opRepo.ops["op-1"].IsActive, "la fila debe quedar inactiva, nunca borrada")
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditActionDeactivate, auditRepo.entries[0].Action)
	assert.Equal(t, "AssetOperation", auditRepo.entries[0].ResourceType)
}

// Una segunda corrección sobre la misma fila responde como inexistente.
func TestCorrect_DosVeces_NotFound(t *testing.T) {
	opRepo := newLedgerOpRepo()
	opRepo.put(empresaA, operacionDePrueba("op-1"))
	uc := operations.NewCorrectOperationUseCase(opRepo, &memAuditRepo{})

	_, err := uc.Deactivate(context.Background(), empresaA, actorID, "op-1")
	require.NoError(t, err)

	_, err = uc.Deactivate(context.Background(), empresaA, actorID, "op-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorrect_OperacionDeOtraEmpresa_NotFound(t *testing.T) {
	opRepo := newLedgerOpRepo()
	opRepo.put(empresaB, operacionDePrueba("op-1"))
	uc := operations.NewCorrectOperationUseCase(opRepo, &memAuditRepo{})

	_, err := uc.Deactivate(context.Background(), empresaA, actorID, "op-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, opRepo.ops["op-1"].IsActive, "la fila de la otra empresa no debe tocarse")
}
