package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestValidCategory(t *testing.T) {
	for _, c := range entity.AssetCategories {
		assert.True(t, entity.ValidCategory(c), "categoría %q debe ser válida", c)
	}
	assert.False(t, entity.ValidCategory("vehiculos"))
	assert.False(t, entity.ValidCategory(""))
	assert.False(t, entity.ValidCategory("Fixed_Assets"), "las categorías son case-sensitive")
}

func TestValidAssetStatus(t *testing.T) {
	for _, s := range []string{"active", "inactive", "repair", "disposed"} {
		assert.True(t, entity.ValidAssetStatus(s))
	}
	assert.False(t, entity.ValidAssetStatus("prestado"))
	assert.False(t, entity.ValidAssetStatus(""))
}

// Los agregados del dashboard cuentan todo estado conocido salvo disposed: un
// activo dado de baja sale de totales y porcentajes.
func TestAccountableStatuses_ExcluyeDisposed(t *testing.T) {
	statuses := entity.AccountableStatuses()

	assert.NotContains(t, statuses, entity.AssetStatusDisposed)
	for _, s := range statuses {
		assert.True(t, entity.ValidAssetStatus(s), "estado %q debe ser conocido", s)
	}
	assert.ElementsMatch(t, []string{
		entity.AssetStatusActive, entity.AssetStatusInactive, entity.AssetStatusRepair,
	}, statuses)
}

func TestValidOperationType(t *testing.T) {
	for _, op := range entity.OperationTypes {
		assert.True(t, entity.ValidOperationType(op))
	}
	assert.False(t, entity.ValidOperationType("prestamo"))
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, entity.RoleAllowed(entity.RoleAdmin, entity.RoleAdmin))
	assert.True(t, entity.RoleAllowed(entity.RoleBodeguero, entity.RoleAdmin, entity.RoleBodeguero))
	assert.False(t, entity.RoleAllowed(entity.RoleObservador, entity.RoleAdmin, entity.RoleContador))
	assert.False(t, entity.RoleAllowed("", entity.AllRoles...), "rol vacío nunca autoriza")
}
