package ecs

// EventBus is a synchronous, single-threaded publish/subscribe dispatcher
// for registry-level notifications. Publish calls every subscribed
// handler inline, in subscription order, and returns the first handler
// error encountered (subsequent handlers still run). There is no worker
// pool and no async path: the registry runs single-threaded, and an
// event bus that queued work onto goroutines would reintroduce the
// synchronization its design otherwise avoids entirely.
type EventBus struct {
	handlers map[EventTypeID][]subscription
	nextID   SubscriptionID
	stats    EventBusStats
}

type subscription struct {
	id      SubscriptionID
	handler Handler
	filter  func(Event) bool
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventTypeID][]subscription)}
}

// Subscribe registers handler for eventType and returns an id for later
// Unsubscribe.
func (b *EventBus) Subscribe(eventType EventTypeID, handler Handler) (SubscriptionID, error) {
	return b.subscribe(eventType, handler, nil)
}

// SubscribeWithFilter registers handler for eventType, but only invokes it
// for events where filter returns true.
func (b *EventBus) SubscribeWithFilter(eventType EventTypeID, filter func(Event) bool, handler Handler) (SubscriptionID, error) {
	return b.subscribe(eventType, handler, filter)
}

func (b *EventBus) subscribe(eventType EventTypeID, handler Handler, filter func(Event) bool) (SubscriptionID, error) {
	if handler == nil {
		return 0, ErrHandlerNil
	}
	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler, filter: filter})
	b.stats.Subscriptions++
	return id, nil
}

// Unsubscribe removes a previously registered subscription.
func (b *EventBus) Unsubscribe(id SubscriptionID) error {
	for eventType, subs := range b.handlers {
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				b.stats.Subscriptions--
				return nil
			}
		}
	}
	return ErrSubscriptionNotFound
}

// Publish dispatches event to every subscriber of its type, in
// subscription order. It returns the first handler error seen, but
// always runs every handler before returning.
func (b *EventBus) Publish(event Event) error {
	b.stats.EventsPublished++
	subs := b.handlers[event.GetType()]

	var firstErr error
	for _, s := range subs {
		if s.filter != nil && !s.filter(event) {
			continue
		}
		if err := s.handler.Handle(event); err != nil {
			b.stats.HandlerErrors++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// GetStats returns a copy of the bus's cumulative counters.
func (b *EventBus) GetStats() EventBusStats { return b.stats }
