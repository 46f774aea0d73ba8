package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lox/simple21/internal/game"
)

// DefaultName is used when the human enters a blank name
const DefaultName = "You"

var (
	drawWords = map[string]bool{"y": true, "yes": true, "d": true, "draw": true, "h": true, "hit": true}
	passWords = map[string]bool{"n": true, "no": true, "p": true, "pass": true, "s": true, "stand": true}
)

// ParseChoice maps a typed answer to an action. Matching ignores case and
// surrounding space.
func ParseChoice(input string) (game.Action, bool) {
	word := strings.ToLower(strings.TrimSpace(input))
	switch {
	case drawWords[word]:
		return game.Draw, true
	case passWords[word]:
		return game.Pass, true
	default:
		return game.Pass, false
	}
}

// Prompter reads the human player's answers line by line
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles *Styles
}

// NewPrompter creates a prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer, styles *Styles) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned before io.EOF is reported.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ErrNameTaken is returned when input closes while the only answer left
// clashes with a name already at the table
var ErrNameTaken = errors.New("name already taken")

// AskName asks for the human player's name. A blank answer or closed input
// yields DefaultName. Names in taken are refused and asked again.
func (p *Prompter) AskName(taken ...string) (string, error) {
	for {
		fmt.Fprint(p.out, p.styles.Prompt.Render("What is your name?  "))

		line, err := p.readLine()
		closed := errors.Is(err, io.EOF)
		if err != nil && !closed {
			return "", fmt.Errorf("failed to read name: %w", err)
		}

		name := strings.TrimSpace(line)
		if name == "" {
			name = DefaultName
		}
		if !slices.Contains(taken, name) {
			return name, nil
		}
		if closed {
			fmt.Fprintln(p.out)
			return "", fmt.Errorf("%w: %q", ErrNameTaken, name)
		}
		fmt.Fprintln(p.out, p.styles.Error.Render(fmt.Sprintf("%s is already playing, pick another name.", name)))
	}
}

// AskDraw shows the player's position and asks whether to draw. Answers
// that are not recognised are rejected and asked again. Closed input is
// returned as io.EOF.
func (p *Prompter) AskDraw(view game.View) (game.Decision, error) {
	fmt.Fprintln(p.out, p.styles.Info.Render(describe(view)))

	for {
		fmt.Fprint(p.out, p.styles.Prompt.Render("Take another card? [y/n] "))

		line, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			return game.Decision{}, err
		}

		action, ok := ParseChoice(line)
		if !ok {
			fmt.Fprintln(p.out, p.styles.Error.Render(fmt.Sprintf("Please answer y or n, not %q.", strings.TrimSpace(line))))
			continue
		}

		return game.Decision{Action: action, Reasoning: "chosen at the prompt"}, nil
	}
}

// Prompt adapts AskDraw for game.NewHumanAgent
func (p *Prompter) Prompt() game.PromptFunc {
	return p.AskDraw
}

func describe(view game.View) string {
	shown := make([]string, len(view.Others))
	for i, total := range view.Others {
		shown[i] = fmt.Sprint(total)
	}
	return fmt.Sprintf("%s, you have %d points (%d showing). Others are showing %s.",
		view.Name, view.Score, view.Visible, strings.Join(shown, ", "))
}
