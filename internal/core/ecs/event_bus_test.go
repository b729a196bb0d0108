package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	id       string
	received []Event
	onHandle func(Event) error
}

func (h *recordingHandler) Handle(event Event) error {
	h.received = append(h.received, event)
	if h.onHandle != nil {
		return h.onHandle(event)
	}
	return nil
}

func (h *recordingHandler) HandlerID() string { return h.id }

func Test_EventBus_PublishDispatchesToSubscriber(t *testing.T) {
	// Arrange
	bus := NewEventBus()
	handler := &recordingHandler{id: "h1"}
	_, err := bus.Subscribe(EventTypeIDEntityCreated, handler)
	require.NoError(t, err)

	e := Entity{Slot: 1, ID: 1}
	event := EntityCreatedEvent{EventBase{Type: EventTypeIDEntityCreated, Entity: e, Timestamp: time.Now(), Priority: EventPriorityNormal}}

	// Act
	err = bus.Publish(event)

	// Assert
	require.NoError(t, err)
	require.Len(t, handler.received, 1)
	assert.Equal(t, e, handler.received[0].GetEntity())
}

func Test_EventBus_PublishIgnoresUnsubscribedType(t *testing.T) {
	// Arrange
	bus := NewEventBus()
	handler := &recordingHandler{id: "h1"}
	_, err := bus.Subscribe(EventTypeIDEntityCreated, handler)
	require.NoError(t, err)

	// Act
	err = bus.Publish(EntityDestroyedEvent{EventBase{Type: EventTypeIDEntityDestroyed}})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, handler.received)
}

func Test_EventBus_UnsubscribeStopsDelivery(t *testing.T) {
	// Arrange
	bus := NewEventBus()
	handler := &recordingHandler{id: "h1"}
	id, err := bus.Subscribe(EventTypeIDEntityCreated, handler)
	require.NoError(t, err)

	// Act
	require.NoError(t, bus.Unsubscribe(id))
	err = bus.Publish(EntityCreatedEvent{EventBase{Type: EventTypeIDEntityCreated}})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, handler.received)
}

func Test_EventBus_UnsubscribeUnknownIDReturnsError(t *testing.T) {
	bus := NewEventBus()
	err := bus.Unsubscribe(SubscriptionID(999))
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func Test_EventBus_SubscribeNilHandlerReturnsError(t *testing.T) {
	bus := NewEventBus()
	_, err := bus.Subscribe(EventTypeIDEntityCreated, nil)
	assert.ErrorIs(t, err, ErrHandlerNil)
}

func Test_EventBus_FilterExcludesNonMatchingEvents(t *testing.T) {
	// Arrange
	bus := NewEventBus()
	target := Entity{Slot: 42, ID: 1}
	handler := &recordingHandler{id: "h1"}
	filter := func(e Event) bool { return e.GetEntity() == target }
	_, err := bus.SubscribeWithFilter(EventTypeIDComponentAdded, filter, handler)
	require.NoError(t, err)

	// Act
	require.NoError(t, bus.Publish(ComponentAddedEvent{EventBase: EventBase{Type: EventTypeIDComponentAdded, Entity: target}}))
	require.NoError(t, bus.Publish(ComponentAddedEvent{EventBase: EventBase{Type: EventTypeIDComponentAdded, Entity: Entity{Slot: 7, ID: 1}}}))

	// Assert
	require.Len(t, handler.received, 1)
	assert.Equal(t, target, handler.received[0].GetEntity())
}

func Test_EventBus_HandlerErrorIsolatedFromOtherHandlers(t *testing.T) {
	// Arrange
	bus := NewEventBus()
	succeeded := &recordingHandler{id: "ok"}
	failed := &recordingHandler{id: "bad", onHandle: func(Event) error { return errors.New("handler error") }}
	_, err := bus.Subscribe(EventTypeIDComponentRemoved, succeeded)
	require.NoError(t, err)
	_, err = bus.Subscribe(EventTypeIDComponentRemoved, failed)
	require.NoError(t, err)

	// Act
	err = bus.Publish(ComponentRemovedEvent{EventBase: EventBase{Type: EventTypeIDComponentRemoved}})

	// Assert: publish reports the error, but both handlers still ran
	require.Error(t, err)
	assert.Len(t, succeeded.received, 1)
	assert.Len(t, failed.received, 1)
	assert.EqualValues(t, 1, bus.GetStats().HandlerErrors)
}

func Test_EventBus_StatsCountPublishesAndSubscriptions(t *testing.T) {
	// Arrange
	bus := NewEventBus()
	handler := &recordingHandler{id: "h1"}
	_, err := bus.Subscribe(EventTypeIDRegistryCompacted, handler)
	require.NoError(t, err)

	// Act
	require.NoError(t, bus.Publish(RegistryCompactedEvent{EventBase{Type: EventTypeIDRegistryCompacted}}))
	require.NoError(t, bus.Publish(RegistryCompactedEvent{EventBase{Type: EventTypeIDRegistryCompacted}}))

	// Assert
	stats := bus.GetStats()
	assert.EqualValues(t, 2, stats.EventsPublished)
	assert.Equal(t, 1, stats.Subscriptions)
}
