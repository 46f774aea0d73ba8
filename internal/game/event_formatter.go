package game

import (
	"fmt"
)

// WelcomeMessage opens every game transcript
const WelcomeMessage = "Welcome to the game of 21!"

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowReasonings bool // Append the agent's reasoning to pass lines
	ShowPhases     bool // Emit a line on every phase change
	ShowSessionID  bool // Mention the session at game start
	OmitWelcome    bool // The caller prints the welcome line itself
}

// EventFormatter turns game events into transcript lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the transcript lines for event. Events that are not part
// of the transcript yield no lines.
func (ef *EventFormatter) Format(event GameEvent) []string {
	switch e := event.(type) {
	case GameStartEvent:
		if ef.opts.OmitWelcome {
			if ef.opts.ShowSessionID && e.SessionID != "" {
				return []string{fmt.Sprintf("Game %s", e.SessionID)}
			}
			return nil
		}
		return []string{ef.FormatGameStart(e)}
	case PhaseChangeEvent:
		if !ef.opts.ShowPhases {
			return nil
		}
		return []string{fmt.Sprintf("-- %s --", e.To)}
	case HiddenCardEvent:
		return []string{ef.FormatHiddenCard(e)}
	case VisibleCardEvent:
		return []string{ef.FormatVisibleCard(e)}
	case PassEvent:
		return []string{ef.FormatPass(e)}
	case GameEndEvent:
		return ef.FormatGameEnd(e)
	default:
		return nil
	}
}

// FormatGameStart formats the welcome line
func (ef *EventFormatter) FormatGameStart(event GameStartEvent) string {
	if ef.opts.ShowSessionID && event.SessionID != "" {
		return fmt.Sprintf("%s (game %s)", WelcomeMessage, event.SessionID)
	}
	return WelcomeMessage
}

// FormatHiddenCard names the player without revealing the card
func (ef *EventFormatter) FormatHiddenCard(event HiddenCardEvent) string {
	return fmt.Sprintf("%s takes a hidden card.", event.Player)
}

// FormatVisibleCard names the player and the card taken
func (ef *EventFormatter) FormatVisibleCard(event VisibleCardEvent) string {
	return fmt.Sprintf("%s takes %d.", event.Player, event.Card)
}

// FormatPass formats a pass, with reasoning if requested
func (ef *EventFormatter) FormatPass(event PassEvent) string {
	if ef.opts.ShowReasonings && event.Reasoning != "" {
		return fmt.Sprintf("%s passes. (%s)", event.Player, event.Reasoning)
	}
	return fmt.Sprintf("%s passes.", event.Player)
}

// FormatStanding formats one player's final score
func (ef *EventFormatter) FormatStanding(s Standing) string {
	return fmt.Sprintf("%s has %d points.", s.Name, s.Score)
}

// FormatVerdict formats the winner line or the no-winner line
func (ef *EventFormatter) FormatVerdict(outcome *Outcome) string {
	if winner, ok := outcome.WinnerStanding(); ok {
		return fmt.Sprintf("%s wins with %d points!", winner.Name, winner.Score)
	}
	return "No one wins!"
}

// FormatGameEnd lists every player's score followed by the verdict
func (ef *EventFormatter) FormatGameEnd(event GameEndEvent) []string {
	if event.Outcome == nil {
		return nil
	}
	lines := make([]string, 0, len(event.Outcome.Standings)+1)
	for _, s := range event.Outcome.Standings {
		lines = append(lines, ef.FormatStanding(s))
	}
	return append(lines, ef.FormatVerdict(event.Outcome))
}
