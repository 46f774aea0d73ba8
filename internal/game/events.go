package game

import (
	"time"
)

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published once, before the first card is dealt
type GameStartEvent struct {
	SessionID string
	Players   []string
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(sessionID string, players []string, at time.Time) GameStartEvent {
	names := make([]string, len(players))
	copy(names, players)
	return GameStartEvent{
		SessionID: sessionID,
		Players:   names,
		timestamp: at,
	}
}

// PhaseChangeEvent is published whenever the dealer moves between phases
type PhaseChangeEvent struct {
	From      Phase
	To        Phase
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// NewPhaseChangeEvent creates a new phase change event
func NewPhaseChangeEvent(from, to Phase, at time.Time) PhaseChangeEvent {
	return PhaseChangeEvent{From: from, To: to, timestamp: at}
}

// HiddenCardEvent is published when a player takes their hidden card.
// It carries no card value.
type HiddenCardEvent struct {
	Player    string
	Seat      int // zero-based seat of the player
	timestamp time.Time
}

func (e HiddenCardEvent) EventType() EventType { return EventTypeHiddenCard }
func (e HiddenCardEvent) Timestamp() time.Time { return e.timestamp }

// NewHiddenCardEvent creates a new hidden card event
func NewHiddenCardEvent(player string, seat int, at time.Time) HiddenCardEvent {
	return HiddenCardEvent{Player: player, Seat: seat, timestamp: at}
}

// VisibleCardEvent is published when a player takes a face-up card
type VisibleCardEvent struct {
	Player       string
	Seat         int
	Card         int
	VisibleTotal int // Player's visible total after this card
	timestamp    time.Time
}

func (e VisibleCardEvent) EventType() EventType { return EventTypeVisibleCard }
func (e VisibleCardEvent) Timestamp() time.Time { return e.timestamp }

// NewVisibleCardEvent creates a new visible card event
func NewVisibleCardEvent(player string, seat, card, visibleTotal int, at time.Time) VisibleCardEvent {
	return VisibleCardEvent{
		Player:       player,
		Seat:         seat,
		Card:         card,
		VisibleTotal: visibleTotal,
		timestamp:    at,
	}
}

// PassEvent is published when a player stops drawing for good
type PassEvent struct {
	Player    string
	Seat      int
	Reasoning string
	timestamp time.Time
}

func (e PassEvent) EventType() EventType { return EventTypePass }
func (e PassEvent) Timestamp() time.Time { return e.timestamp }

// NewPassEvent creates a new pass event
func NewPassEvent(player string, seat int, reasoning string, at time.Time) PassEvent {
	return PassEvent{Player: player, Seat: seat, Reasoning: reasoning, timestamp: at}
}

// GameEndEvent is published once scoring is complete
type GameEndEvent struct {
	Outcome   *Outcome
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(outcome *Outcome, at time.Time) GameEndEvent {
	return GameEndEvent{Outcome: outcome, timestamp: at}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a plain function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers are
// invoked in subscription order on the publishing goroutine.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Only comparable
// subscribers can be removed; EventSubscriberFunc values cannot.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventRecorder keeps every event it receives, in order
type EventRecorder struct {
	Events []GameEvent
}

// OnEvent records the event
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events of the given type
func (r *EventRecorder) OfType(t EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.Events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}
