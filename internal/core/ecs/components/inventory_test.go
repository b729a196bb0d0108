package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs"
)

func newInventoryRegistry(t *testing.T) (*ecs.Registry, *InventoryStore) {
	t.Helper()
	reg := ecs.NewRegistry(ecs.DefaultRegistryConfig())
	schema, store := NewInventoryComponentType()
	require.NoError(t, reg.RegisterComponentType(schema))
	return reg, store
}

func Test_InventoryStore_AddItemStacksExistingEntry(t *testing.T) {
	// Arrange
	reg, inventory := newInventoryRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeInventory, e)
	require.NoError(t, err)

	// Act
	assert.True(t, inventory.AddItem(h, "potion", 2))
	assert.True(t, inventory.AddItem(h, "potion", 3))

	// Assert
	items := inventory.Items.Get(h.RepoSlot)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func Test_InventoryStore_AddItemRejectedPastCapacity(t *testing.T) {
	// Arrange
	reg, inventory := newInventoryRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeInventory, e)
	require.NoError(t, err)
	inventory.Capacity.Set(h.RepoSlot, 1)

	// Act
	assert.True(t, inventory.AddItem(h, "sword", 1))
	ok := inventory.AddItem(h, "shield", 1)

	// Assert
	assert.False(t, ok)
	assert.Len(t, inventory.Items.Get(h.RepoSlot), 1)
}

func Test_InventoryStore_RemoveItemDropsEntryAtZero(t *testing.T) {
	// Arrange
	reg, inventory := newInventoryRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeInventory, e)
	require.NoError(t, err)
	inventory.AddItem(h, "arrow", 3)

	// Act
	assert.True(t, inventory.RemoveItem(h, "arrow", 3))

	// Assert
	assert.False(t, inventory.HasItem(h, "arrow"))
}

func Test_InventoryStore_RemoveItemRejectedWhenInsufficient(t *testing.T) {
	// Arrange
	reg, inventory := newInventoryRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeInventory, e)
	require.NoError(t, err)
	inventory.AddItem(h, "arrow", 1)

	// Act
	ok := inventory.RemoveItem(h, "arrow", 5)

	// Assert
	assert.False(t, ok)
	assert.True(t, inventory.HasItem(h, "arrow"))
}

func Test_InventoryStore_HasItemReportsAbsentItem(t *testing.T) {
	// Arrange
	reg, inventory := newInventoryRegistry(t)
	e := reg.AddEntity()
	h, err := reg.AddComponent(ecs.ComponentTypeInventory, e)
	require.NoError(t, err)

	// Act / Assert
	assert.False(t, inventory.HasItem(h, "potion"))
}
