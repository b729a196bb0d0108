package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs"
)

func newAIRegistry(t *testing.T) (*ecs.Registry, *AIStore) {
	t.Helper()
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())
	transformSchema, _ := NewTransformComponentType()
	require.NoError(t, reg.RegisterComponentType(transformSchema))
	schema, store := NewAIComponentType()
	require.NoError(t, reg.RegisterComponentType(schema))
	return reg, store
}

func Test_AIStore_AddAutoAttachesTransform(t *testing.T) {
	// Arrange
	reg, _ := newAIRegistry(t)
	e := reg.AddEntity()

	// Act
	_, err := reg.AddComponent(ecs.ComponentTypeAI, e)
	require.NoError(t, err)

	// Assert
	_, ok := reg.GetComponent(ecs.ComponentTypeTransform, e)
	assert.True(t, ok)
}

func Test_AIStore_SetStateRecordsTransitionTime(t *testing.T) {
	// Arrange
	reg, store := newAIRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAI, e)
	require.NoError(t, err)
	before := store.LastStateChange.Get(h.RepoSlot)

	// Act
	store.SetState(h, AIStateChase)

	// Assert
	assert.Equal(t, AIStateChase, store.State.Get(h.RepoSlot))
	assert.True(t, store.LastStateChange.Get(h.RepoSlot).After(before))
}

func Test_AIStore_TargetLifecycle(t *testing.T) {
	// Arrange
	reg, store := newAIRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAI, e)
	require.NoError(t, err)
	target := reg.AddEntity()

	// Act
	store.SetTarget(h, target)
	assert.Equal(t, target, store.Target.Get(h.RepoSlot))

	store.ClearTarget(h)

	// Assert
	assert.Equal(t, ecs.InvalidEntity, store.Target.Get(h.RepoSlot))
}

func Test_AIStore_PatrolPointsCycle(t *testing.T) {
	// Arrange
	reg, store := newAIRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAI, e)
	require.NoError(t, err)
	points := []ecs.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	store.SetPatrolPoints(h, points)

	// Act & Assert: wraps around
	assert.Equal(t, points[0], store.NextPatrolPoint(h))
	assert.Equal(t, points[1], store.NextPatrolPoint(h))
	assert.Equal(t, points[2], store.NextPatrolPoint(h))
	assert.Equal(t, points[0], store.NextPatrolPoint(h))
}

func Test_AIStore_DetectionAndAttackRange(t *testing.T) {
	// Arrange
	reg, store := newAIRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeAI, e)
	require.NoError(t, err)
	store.DetectionRadius.Set(h.RepoSlot, 50)
	store.AttackRange.Set(h.RepoSlot, 10)

	// Act & Assert
	assert.True(t, store.IsInDetectionRange(h, ecs.Vector2{}, ecs.Vector2{X: 40, Y: 0}))
	assert.False(t, store.IsInAttackRange(h, ecs.Vector2{}, ecs.Vector2{X: 40, Y: 0}))
	assert.True(t, store.IsInAttackRange(h, ecs.Vector2{}, ecs.Vector2{X: 5, Y: 0}))
}
