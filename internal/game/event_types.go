package game

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart   EventType = "game_start"
	EventTypePhaseChange EventType = "phase_change"
	EventTypeHiddenCard  EventType = "hidden_card"
	EventTypeVisibleCard EventType = "visible_card"
	EventTypePass        EventType = "pass"
	EventTypeGameEnd     EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}
