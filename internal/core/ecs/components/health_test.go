package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs"
)

func newHealthRegistry(t *testing.T) (*ecs.Registry, *HealthStore) {
	t.Helper()
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())
	schema, store := NewHealthComponentType()
	require.NoError(t, reg.RegisterComponentType(schema))
	return reg, store
}

func Test_HealthStore_TakeDamageDepletesShieldFirst(t *testing.T) {
	// Arrange
	reg, store := newHealthRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeHealth, e)
	require.NoError(t, err)
	store.NewHealth(h, 100)
	store.Shield.Set(h.RepoSlot, 20)

	// Act
	dealt := store.TakeDamage(h, 30)

	// Assert: 20 absorbed by shield, 10 applied to health
	assert.Equal(t, 10, dealt)
	assert.Equal(t, 0, store.Shield.Get(h.RepoSlot))
	assert.Equal(t, 90, store.CurrentHealth.Get(h.RepoSlot))
}

func Test_HealthStore_TakeDamageClampsAtZero(t *testing.T) {
	// Arrange
	reg, store := newHealthRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeHealth, e)
	require.NoError(t, err)
	store.NewHealth(h, 10)

	// Act
	store.TakeDamage(h, 1000)

	// Assert
	assert.Equal(t, 0, store.CurrentHealth.Get(h.RepoSlot))
	assert.True(t, store.IsDead(h))
}

func Test_HealthStore_InvincibleIgnoresDamage(t *testing.T) {
	// Arrange
	reg, store := newHealthRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeHealth, e)
	require.NoError(t, err)
	store.NewHealth(h, 100)
	store.IsInvincible.Set(h.RepoSlot, true)

	// Act
	dealt := store.TakeDamage(h, 50)

	// Assert
	assert.Equal(t, 0, dealt)
	assert.Equal(t, 100, store.CurrentHealth.Get(h.RepoSlot))
}

func Test_HealthStore_HealClampsAtMax(t *testing.T) {
	// Arrange
	reg, store := newHealthRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeHealth, e)
	require.NoError(t, err)
	store.NewHealth(h, 100)
	store.TakeDamage(h, 90)

	// Act
	healed := store.Heal(h, 100)

	// Assert
	assert.Equal(t, 90, healed)
	assert.Equal(t, 100, store.CurrentHealth.Get(h.RepoSlot))
}

func Test_HealthStore_StatusEffectLifecycle(t *testing.T) {
	// Arrange
	reg, store := newHealthRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeHealth, e)
	require.NoError(t, err)

	// Act
	store.AddStatusEffect(h, StatusEffect{Type: StatusTypePoison, Duration: 1.0})
	assert.True(t, store.HasStatusEffect(h, StatusTypePoison))

	store.UpdateStatusEffects(h, 0.5)
	assert.True(t, store.HasStatusEffect(h, StatusTypePoison))

	store.UpdateStatusEffects(h, 0.6)

	// Assert: expired effect dropped
	assert.False(t, store.HasStatusEffect(h, StatusTypePoison))
}

func Test_HealthStore_AddStatusEffectReplacesSameType(t *testing.T) {
	// Arrange
	reg, store := newHealthRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeHealth, e)
	require.NoError(t, err)

	// Act
	store.AddStatusEffect(h, StatusEffect{Type: StatusTypeBurn, Duration: 1.0})
	store.AddStatusEffect(h, StatusEffect{Type: StatusTypeBurn, Duration: 5.0})

	// Assert
	effects := store.StatusEffects.Get(h.RepoSlot)
	require.Len(t, effects, 1)
	assert.Equal(t, 5.0, effects[0].Duration)
}
