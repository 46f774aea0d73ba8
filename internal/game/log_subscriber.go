package game

import "github.com/charmbracelet/log"

// LogSubscriber mirrors game events to a logger at debug level
type LogSubscriber struct {
	logger *log.Logger
}

// NewLogSubscriber creates a subscriber writing to logger
func NewLogSubscriber(logger *log.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger}
}

// OnEvent logs the event
func (s *LogSubscriber) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case GameStartEvent:
		s.logger.Debug("event", "type", e.EventType(), "players", e.Players)
	case PhaseChangeEvent:
		s.logger.Debug("event", "type", e.EventType(), "from", e.From, "to", e.To)
	case HiddenCardEvent:
		s.logger.Debug("event", "type", e.EventType(), "player", e.Player)
	case VisibleCardEvent:
		s.logger.Debug("event", "type", e.EventType(), "player", e.Player, "card", e.Card, "visible", e.VisibleTotal)
	case PassEvent:
		s.logger.Debug("event", "type", e.EventType(), "player", e.Player, "reasoning", e.Reasoning)
	case GameEndEvent:
		if e.Outcome == nil {
			return
		}
		s.logger.Debug("event", "type", e.EventType(), "winner", e.Outcome.Winner, "rounds", e.Outcome.Rounds)
	default:
		s.logger.Debug("event", "type", event.EventType())
	}
}
