package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testComponentType ComponentType = "test.marker"

func newMarkerSchema() *ComponentTypeSchema {
	return &ComponentTypeSchema{
		TypeID: testComponentType,
		Properties: []PropertySchema{
			{Name: "value", ValueKind: ValueI32, ClonePolicy: CloneValue},
		},
		NewColumn: func(p PropertySchema, capacity int) Column {
			return NewTypedColumn[int32](capacity, ValueI32, CloneValue, func() int32 { return 0 }, false, nil)
		},
	}
}

func newMarkerRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(DefaultRegistryConfig())
	require.NoError(t, reg.RegisterComponentType(newMarkerSchema()))
	return reg
}

func Test_Registry_AddEntityPublishesEventAndRecordsCounter(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDEntityCreated, handler)
	require.NoError(t, err)

	// Act
	e := reg.AddEntity()

	// Assert
	require.Len(t, handler.received, 1)
	assert.Equal(t, e, handler.received[0].GetEntity())
	summary := reg.Metrics.GetAllMetrics()["ecs.entities_created"]
	require.NotNil(t, summary)
	assert.EqualValues(t, 1, summary.Sum)
}

func Test_Registry_RemoveEntityPublishesEventAndRecordsCounter(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e := reg.AddEntity()
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDEntityDestroyed, handler)
	require.NoError(t, err)

	// Act
	ok := reg.RemoveEntity(e)

	// Assert
	assert.True(t, ok)
	require.Len(t, handler.received, 1)
	assert.Equal(t, e, handler.received[0].GetEntity())
	summary := reg.Metrics.GetAllMetrics()["ecs.entities_destroyed"]
	require.NotNil(t, summary)
	assert.EqualValues(t, 1, summary.Sum)
}

func Test_Registry_RemoveEntityDeadEntityDoesNotPublish(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e := reg.AddEntity()
	reg.RemoveEntity(e)
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDEntityDestroyed, handler)
	require.NoError(t, err)

	// Act: removing the already-dead entity again must be a no-op
	ok := reg.RemoveEntity(e)

	// Assert
	assert.False(t, ok)
	assert.Empty(t, handler.received)
}

func Test_Registry_AddComponentPublishesEventAndRecordsCounter(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e := reg.AddEntity()
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDComponentAdded, handler)
	require.NoError(t, err)

	// Act
	h, err := reg.AddComponent(testComponentType, e)

	// Assert
	require.NoError(t, err)
	require.Len(t, handler.received, 1)
	assert.Equal(t, e, handler.received[0].GetEntity())
	added, ok := handler.received[0].(ComponentAddedEvent)
	require.True(t, ok)
	assert.Equal(t, testComponentType, added.ComponentType)
	assert.Equal(t, e.Slot, h.EntitySlot)
	summary := reg.Metrics.GetAllMetrics()["ecs.components_added"]
	require.NotNil(t, summary)
	assert.EqualValues(t, 1, summary.Sum)
}

func Test_Registry_AddComponentDeadEntityDoesNotPublish(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e := reg.AddEntity()
	reg.RemoveEntity(e)
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDComponentAdded, handler)
	require.NoError(t, err)

	// Act
	_, err = reg.AddComponent(testComponentType, e)

	// Assert
	require.Error(t, err)
	assert.Empty(t, handler.received)
}

func Test_Registry_RemoveComponentPublishesEventAndRecordsCounter(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e := reg.AddEntity()
	_, err := reg.AddComponent(testComponentType, e)
	require.NoError(t, err)
	handler := &recordingHandler{id: "h1"}
	_, err = reg.Events.Subscribe(EventTypeIDComponentRemoved, handler)
	require.NoError(t, err)

	// Act
	ok := reg.RemoveComponent(testComponentType, e.Slot)

	// Assert
	assert.True(t, ok)
	require.Len(t, handler.received, 1)
	removed, ok2 := handler.received[0].(ComponentRemovedEvent)
	require.True(t, ok2)
	assert.Equal(t, testComponentType, removed.ComponentType)
	assert.Equal(t, e, handler.received[0].GetEntity())
	summary := reg.Metrics.GetAllMetrics()["ecs.components_removed"]
	require.NotNil(t, summary)
	assert.EqualValues(t, 1, summary.Sum)
}

func Test_Registry_RemoveComponentAbsentDoesNotPublish(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e := reg.AddEntity()
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDComponentRemoved, handler)
	require.NoError(t, err)

	// Act: no component of this type was ever added to e
	ok := reg.RemoveComponent(testComponentType, e.Slot)

	// Assert
	assert.False(t, ok)
	assert.Empty(t, handler.received)
}

func Test_Registry_CompactPublishesEventAndRecordsGauge(t *testing.T) {
	// Arrange
	reg := newMarkerRegistry(t)
	e1 := reg.AddEntity()
	reg.AddEntity()
	reg.RemoveEntity(e1)
	handler := &recordingHandler{id: "h1"}
	_, err := reg.Events.Subscribe(EventTypeIDRegistryCompacted, handler)
	require.NoError(t, err)

	// Act
	reg.Compact()

	// Assert
	require.Len(t, handler.received, 1)
	summary := reg.Metrics.GetAllMetrics()["ecs.entity_count"]
	require.NotNil(t, summary)
	assert.EqualValues(t, 1, summary.Sum)
	assert.Equal(t, 1, reg.EntityCount())
}

func Test_Registry_EntityTableGrowthUsesConfiguredGrowthFactor(t *testing.T) {
	// Arrange
	cfg := RegistryConfig{
		InitialEntityCapacity:  2,
		InitialRepoCapacity:    2,
		GrowthFactor:           2.0,
		CompactionShrinkBelow:  0.6,
		CompactionShrinkTarget: 1.2,
	}
	reg := NewRegistry(cfg)

	// Act: the entity table starts with only the sentinel slot allocated;
	// the first AddEntity must grow it.
	reg.AddEntity()

	// Assert: grown to cursor(2)*growthFactor(2.0) + 1 = 5.
	assert.Len(t, reg.entityIDColumn, 5)
}
