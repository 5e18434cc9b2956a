package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of an engine event. Every toast the
// presentation layer shows maps to one of these.
type EventType string

const (
	// Session events
	EventGameStarted EventType = "GAME_STARTED"

	// Draw events
	EventCardsDrawn EventType = "CARDS_DRAWN"
	EventDeckEmpty  EventType = "DECK_EMPTY"
	EventHandFull   EventType = "HAND_FULL"
	EventDeckLow    EventType = "DECK_LOW"

	// Play events
	EventCardPlayed   EventType = "CARD_PLAYED"
	EventPlayRejected EventType = "PLAY_REJECTED"
	EventUndoApplied  EventType = "UNDO_APPLIED"
	EventUndoRejected EventType = "UNDO_REJECTED"

	// Turn events
	EventPhaseChanged      EventType = "PHASE_CHANGED"
	EventTurnStarted       EventType = "TURN_STARTED"
	EventProductionApplied EventType = "PRODUCTION_APPLIED"

	// Wallet events
	EventPurchaseSettled EventType = "PURCHASE_SETTLED"
	EventPurchaseStale   EventType = "PURCHASE_STALE"
)

// Event represents a state change that the notification sink may react
// to. Only the name plus payload contract matters; presentation is the
// subscriber's business.
type Event struct {
	Type      EventType
	SessionID string
	CardID    string
	CardName  string
	Phase     string
	Turn      int
	Amount    int
	Message   string
	ErrorKind string
	Timestamp time.Time
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// EventBus provides a synchronous publish/subscribe implementation
// with optional type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]typedListener
	nextHandle     int
}

type typedListener struct {
	handle   int
	callback func(Event)
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]typedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], typedListener{
		handle:   handle,
		callback: callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	bus.mu.RLock()
	defer bus.mu.RUnlock()

	for _, listener := range bus.listeners {
		listener(event)
	}
	if typed, ok := bus.typedListeners[event.Type]; ok {
		for _, listener := range typed {
			listener.callback(event)
		}
	}
}
