package ecs

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markerColumnFactory is a minimal DecoratedColumnFactory: one int32 per
// slot, defaulting to a caller-chosen marker value.
type markerColumnFactory struct {
	defaultValue int32
}

func (f *markerColumnFactory) CreateColumn(initialCapacity int) Column {
	return NewTypedColumn[int32](initialCapacity, ValueI32, CloneValue, func() int32 { return f.defaultValue }, false, nil)
}

func (f *markerColumnFactory) DefaultInit(col Column, slot uint32) {
	col.(*TypedColumn[int32]).Set(slot, f.defaultValue)
}

func (f *markerColumnFactory) CloneSlot(col Column, src, dst uint32) {
	c := col.(*TypedColumn[int32])
	c.Set(dst, c.Get(src))
}

func Test_Repository_DecorateDefaultInitsLiveAndFutureSlots(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	repo := reg.Repository(testComponentType)
	e1 := reg.AddEntity()
	h1, err := reg.AddComponent(testComponentType, e1)
	require.NoError(t, err)

	// Act: decorate after a component already exists, then add another
	// afterwards
	handle := repo.Decorate(&markerColumnFactory{defaultValue: 7})
	e2 := reg.AddEntity()
	h2, err := reg.AddComponent(testComponentType, e2)
	require.NoError(t, err)

	// Assert: both the pre-existing and the newly added slot see the default
	col := handle.Column().(*TypedColumn[int32])
	assert.EqualValues(t, 7, col.Get(h1.RepoSlot))
	assert.EqualValues(t, 7, col.Get(h2.RepoSlot))
}

func Test_Repository_CompactDropsColumnAfterStrongHandleReleased(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	repo := reg.Repository(testComponentType)
	e1 := reg.AddEntity()
	_, err := reg.AddComponent(testComponentType, e1)
	require.NoError(t, err)
	e2 := reg.AddEntity()
	_, err = reg.AddComponent(testComponentType, e2)
	require.NoError(t, err)

	handle := repo.Decorate(&markerColumnFactory{defaultValue: 1})
	require.EqualValues(t, 1, repo.Stats().DecoratedColumn)

	// Leave a gap for compaction to close.
	reg.RemoveEntity(e1)

	// Act: drop the only strong reference, force collection, then compact.
	repo.Undecorate(handle)
	handle = nil
	runtime.GC()
	runtime.GC()

	reg.Compact()

	// Assert: the repository no longer tracks the decorated column.
	assert.EqualValues(t, 0, repo.Stats().DecoratedColumn)
}

func Test_Repository_GrowthUsesConfiguredGrowthFactor(t *testing.T) {
	// Arrange
	cfg := RegistryConfig{
		InitialEntityCapacity:  8,
		InitialRepoCapacity:    2,
		GrowthFactor:           2.0,
		CompactionShrinkBelow:  0.6,
		CompactionShrinkTarget: 1.2,
	}
	reg := NewRegistry(cfg)
	require.NoError(t, reg.RegisterComponentType(newMarkerSchema()))
	repo := reg.Repository(testComponentType)
	require.EqualValues(t, 2, repo.Stats().Capacity)

	// Act: slot 0 is reserved, so the second Add (repo slot 2) overflows the
	// initial capacity of 2; the third fits in the grown repository.
	for i := 0; i < 3; i++ {
		e := reg.AddEntity()
		_, err := reg.AddComponent(testComponentType, e)
		require.NoError(t, err)
	}

	// Assert: grown to capacity(2)*growthFactor(2.0) + 1 = 5.
	assert.EqualValues(t, 5, repo.Stats().Capacity)
}

func Test_Repository_CompactShrinksUsingConfiguredThresholds(t *testing.T) {
	// Arrange: an aggressive shrink-below threshold so removing even one of
	// four components forces a shrink.
	cfg := RegistryConfig{
		InitialEntityCapacity:  8,
		InitialRepoCapacity:    16,
		GrowthFactor:           1.5,
		CompactionShrinkBelow:  0.9,
		CompactionShrinkTarget: 1.0,
	}
	reg := NewRegistry(cfg)
	require.NoError(t, reg.RegisterComponentType(newMarkerSchema()))
	repo := reg.Repository(testComponentType)

	entities := make([]Entity, 4)
	for i := range entities {
		entities[i] = reg.AddEntity()
		_, err := reg.AddComponent(testComponentType, entities[i])
		require.NoError(t, err)
	}
	require.True(t, reg.RemoveComponent(testComponentType, entities[0].Slot))
	require.EqualValues(t, 16, repo.Stats().Capacity)

	// Act: 3 live of 16 capacity is far below the 0.9 threshold.
	reg.Compact()

	// Assert: shrunk to shrinkTarget(1.0) * newCursor(4) + 1 = 5.
	assert.EqualValues(t, 5, repo.Stats().Capacity)
}
