package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for the console transcript and prompts
type Styles struct {
	Welcome  lipgloss.Style
	Hidden   lipgloss.Style
	Card     lipgloss.Style
	Pass     lipgloss.Style
	Score    lipgloss.Style
	Winner   lipgloss.Style
	NoWinner lipgloss.Style
	Prompt   lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
	Phase    lipgloss.Style
}

// NewStyles builds styles rendering to w. With color disabled every style
// renders plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := lipgloss.NewRenderer(w, opts...)

	return &Styles{
		Welcome:  r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		Hidden:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Card:     r.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Pass:     r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		Score:    r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Winner:   r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		NoWinner: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Prompt:   r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:     r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Phase:    r.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() *Styles {
	return NewStyles(io.Discard, false)
}
