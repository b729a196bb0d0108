package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs"
)

func newFullRegistry(t *testing.T) *ecs.Registry {
	t.Helper()
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())
	transformSchema, _ := NewTransformComponentType()
	spriteSchema, _ := NewSpriteComponentType()
	physicsSchema, _ := NewPhysicsComponentType()
	healthSchema, _ := NewHealthComponentType()
	aiSchema, _ := NewAIComponentType()
	inventorySchema, _ := NewInventoryComponentType()
	energySchema, _ := NewEnergyComponentType()
	audioSchema, _ := NewAudioComponentType()
	for _, s := range []*ecs.ComponentTypeSchema{
		transformSchema, spriteSchema, physicsSchema, healthSchema, aiSchema,
		inventorySchema, energySchema, audioSchema,
	} {
		require.NoError(t, reg.RegisterComponentType(s))
	}
	return reg
}

func Test_Components_TypeConstantsAreDistinct(t *testing.T) {
	types := []ecs.ComponentType{
		ecs.ComponentTypeTransform,
		ecs.ComponentTypeSprite,
		ecs.ComponentTypePhysics,
		ecs.ComponentTypeHealth,
		ecs.ComponentTypeAI,
		ecs.ComponentTypeInventory,
		ecs.ComponentTypeEnergy,
		ecs.ComponentTypeAudio,
	}
	seen := make(map[ecs.ComponentType]bool, len(types))
	for _, ty := range types {
		assert.False(t, seen[ty], "duplicate component type %s", ty)
		seen[ty] = true
	}
}

func Test_Components_PhysicsAndAIBothRequireTransform(t *testing.T) {
	// Arrange
	reg := newFullRegistry(t)
	e := reg.AddEntity()

	// Act: adding physics then AI to the same entity must not double-attach
	// or error on the already-present required transform.
	_, err := reg.AddComponent(ecs.ComponentTypePhysics, e)
	require.NoError(t, err)
	_, err = reg.AddComponent(ecs.ComponentTypeAI, e)
	require.NoError(t, err)

	// Assert
	_, ok := reg.GetComponent(ecs.ComponentTypeTransform, e)
	assert.True(t, ok)
}

func Test_Components_MultiTypeIterationSeesSharedEntities(t *testing.T) {
	// Arrange
	reg := newFullRegistry(t)
	moving := reg.AddEntity()
	_, err := reg.AddComponent(ecs.ComponentTypeTransform, moving)
	require.NoError(t, err)
	_, err = reg.AddComponent(ecs.ComponentTypePhysics, moving)
	require.NoError(t, err)

	spriteOnly := reg.AddEntity()
	_, err = reg.AddComponent(ecs.ComponentTypeSprite, spriteOnly)
	require.NoError(t, err)

	// Act
	it := reg.Iterate([]ecs.ComponentType{ecs.ComponentTypeTransform, ecs.ComponentTypePhysics}, nil)
	seen := 0
	for it.Advance() {
		assert.Equal(t, moving, it.Entity())
		seen++
	}

	// Assert
	assert.Equal(t, 1, seen)
}

func Test_Components_RemoveEntityCascadesOwnedComponents(t *testing.T) {
	// Arrange
	reg := newFullRegistry(t)
	e := reg.AddEntity()
	_, err := reg.AddComponent(ecs.ComponentTypePhysics, e)
	require.NoError(t, err)

	// Act
	removed := reg.RemoveEntity(e)

	// Assert
	assert.True(t, removed)
	_, ok := reg.GetComponent(ecs.ComponentTypeTransform, e)
	assert.False(t, ok)
	_, ok = reg.GetComponent(ecs.ComponentTypePhysics, e)
	assert.False(t, ok)
}
