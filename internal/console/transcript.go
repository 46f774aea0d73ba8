// Package console connects a game to a terminal: it prints the game
// transcript and reads the human player's answers.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/simple21/internal/game"
)

// Transcript writes a line for every transcript event it receives
type Transcript struct {
	w         io.Writer
	styles    *Styles
	formatter *game.EventFormatter
}

// NewTranscript creates a transcript writing to w
func NewTranscript(w io.Writer, styles *Styles, opts game.FormattingOptions) *Transcript {
	return &Transcript{
		w:         w,
		styles:    styles,
		formatter: game.NewEventFormatter(opts),
	}
}

// OnEvent renders the event
func (t *Transcript) OnEvent(event game.GameEvent) {
	style := t.styleFor(event)
	lines := t.formatter.Format(event)

	if end, ok := event.(game.GameEndEvent); ok && end.Outcome != nil {
		// Score lines share one style; the verdict gets its own.
		for i, line := range lines {
			if i == len(lines)-1 {
				t.println(t.verdictStyle(end.Outcome), line)
				continue
			}
			t.println(style, line)
		}
		return
	}

	for _, line := range lines {
		t.println(style, line)
	}
}

func (t *Transcript) println(style lipgloss.Style, line string) {
	fmt.Fprintln(t.w, style.Render(line))
}

func (t *Transcript) styleFor(event game.GameEvent) lipgloss.Style {
	switch event.EventType() {
	case game.EventTypeGameStart:
		return t.styles.Welcome
	case game.EventTypePhaseChange:
		return t.styles.Phase
	case game.EventTypeHiddenCard:
		return t.styles.Hidden
	case game.EventTypeVisibleCard:
		return t.styles.Card
	case game.EventTypePass:
		return t.styles.Pass
	default:
		return t.styles.Score
	}
}

func (t *Transcript) verdictStyle(outcome *game.Outcome) lipgloss.Style {
	if outcome.HasWinner() {
		return t.styles.Winner
	}
	return t.styles.NoWinner
}
