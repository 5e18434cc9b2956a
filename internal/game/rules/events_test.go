package rules

import (
	"testing"
)

func TestEventBus_Subscribe(t *testing.T) {
	bus := NewEventBus()

	var received []Event
	bus.Subscribe(func(e Event) {
		received = append(received, e)
	})

	bus.Publish(Event{Type: EventCardPlayed, SessionID: "s1"})
	bus.Publish(Event{Type: EventPhaseChanged, SessionID: "s1"})

	if len(received) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(received))
	}
	if received[0].Type != EventCardPlayed {
		t.Errorf("Expected CARD_PLAYED first, got %s", received[0].Type)
	}
}

func TestEventBus_SubscribeTyped(t *testing.T) {
	bus := NewEventBus()

	var draws int
	bus.SubscribeTyped(EventCardsDrawn, func(Event) { draws++ })

	bus.Publish(Event{Type: EventCardsDrawn})
	bus.Publish(Event{Type: EventCardPlayed})
	bus.Publish(Event{Type: EventCardsDrawn})

	if draws != 2 {
		t.Errorf("Expected 2 typed deliveries, got %d", draws)
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	var count int
	handle := bus.Subscribe(func(Event) { count++ })

	bus.Publish(Event{Type: EventCardPlayed})
	bus.Unsubscribe(handle)
	bus.Publish(Event{Type: EventCardPlayed})

	if count != 1 {
		t.Errorf("Expected 1 delivery after unsubscribe, got %d", count)
	}
}

func TestEventBus_PublishStampsTimestamp(t *testing.T) {
	bus := NewEventBus()

	var got Event
	bus.Subscribe(func(e Event) { got = e })
	bus.Publish(Event{Type: EventGameStarted})

	if got.Timestamp.IsZero() {
		t.Error("Expected publish to stamp a timestamp")
	}
}
