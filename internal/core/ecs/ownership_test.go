package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOwnershipSchema(id ComponentType, requires ...ComponentType) *ComponentTypeSchema {
	return &ComponentTypeSchema{
		TypeID:          id,
		RequiredTypeIDs: requires,
		Properties:      []PropertySchema{{Name: "v", ValueKind: ValueI32, ClonePolicy: CloneValue}},
		NewColumn: func(p PropertySchema, capacity int) Column {
			return NewTypedColumn[int32](capacity, ValueI32, CloneValue, func() int32 { return 0 }, false, nil)
		},
	}
}

// Test_Registry_DisownAndRemoveChildrenSurvivesCrossRepoCompaction reproduces
// spec §8 scenario 2 (a required-type auto-attach link) combined with
// compaction: T2 requires T1, so adding T2 attaches and owns a T1 component —
// the only cross-repository owner/owned edge the core itself creates. An
// extra direct T1-only attach desynchronises T1's and T2's live-slot order,
// so compacting the two repositories independently renumbers a shared
// entity's T1 and T2 repo slots differently. Disowning one entity's T2 must
// not corrupt a different, still-live entity's T1 ownership record.
func Test_Registry_DisownAndRemoveChildrenSurvivesCrossRepoCompaction(t *testing.T) {
	// Arrange
	reg := NewRegistry(DefaultRegistryConfig())
	require.NoError(t, reg.RegisterComponentType(newOwnershipSchema("test.t1")))
	require.NoError(t, reg.RegisterComponentType(newOwnershipSchema("test.t2", "test.t1")))

	// e0 only ever carries T1, directly attached (not via the T2 cascade),
	// so T1's repo has one more live slot ahead of every entity below.
	e0 := reg.AddEntity()
	_, err := reg.AddComponent("test.t1", e0)
	require.NoError(t, err)

	entities := make([]Entity, 5)
	for i := range entities {
		entities[i] = reg.AddEntity()
		_, err := reg.AddComponent("test.t2", entities[i])
		require.NoError(t, err)
	}

	// Remove one T2 (cascading its owned T1) to leave a mid-sequence gap in
	// both repositories before compacting.
	require.True(t, reg.RemoveComponent("test.t2", entities[1].Slot))
	reg.Compact()

	// Act: disown-and-remove entities[2]'s T2, cascading removal of its
	// owned T1. Before the fix, the cascade resolved the owned T1's
	// ownership record through its stale pre-compaction RepoSlot, which by
	// now belongs to a different entity's T1 component in the renumbered
	// repository.
	require.True(t, reg.RemoveComponent("test.t2", entities[2].Slot))

	// Assert: entities[2]'s components are gone.
	_, ok := reg.GetComponent("test.t2", entities[2])
	assert.False(t, ok)
	_, ok = reg.GetComponent("test.t1", entities[2])
	assert.False(t, ok)

	// Assert: entities[3] and entities[4] are untouched, and entities[3]'s
	// T1 ownership record still correctly names entities[3]'s own T2 as
	// owner (not zeroed, not pointing at the wrong entity).
	t1Handle3, ok := reg.GetComponent("test.t1", entities[3])
	require.True(t, ok)
	t2Handle3, ok := reg.GetComponent("test.t2", entities[3])
	require.True(t, ok)

	rec3 := reg.ownershipRecord(OwnableRef{Kind: OwnableComponent, Component: t1Handle3})
	require.NotNil(t, rec3)
	require.Equal(t, OwnableComponent, rec3.Owner.Kind)
	assert.Equal(t, ComponentType("test.t2"), rec3.Owner.Component.Type)
	assert.Equal(t, entities[3].Slot, rec3.Owner.Component.EntitySlot)
	assert.Equal(t, t2Handle3.CompID, rec3.Owner.Component.CompID)

	_, ok = reg.GetComponent("test.t1", entities[4])
	assert.True(t, ok)
	_, ok = reg.GetComponent("test.t2", entities[4])
	assert.True(t, ok)
}
