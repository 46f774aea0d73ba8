package game

// Action is what a player chooses to do on their turn
type Action int

const (
	// Pass stops drawing for the rest of the game
	Pass Action = iota
	// Draw takes one more visible card
	Draw
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case Pass:
		return "pass"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Decision represents a player's decision with reasoning
type Decision struct {
	Action    Action
	Reasoning string // Human-readable explanation
}

// Draws reports whether the decision is to take another card
func (d Decision) Draws() bool {
	return d.Action == Draw
}

// View is the read-only information a player may use to decide. It holds
// the player's own totals and only the visible totals of everyone else.
type View struct {
	Name    string
	Score   int   // Own score, hidden card included
	Visible int   // Own visible total
	Others  []int // Visible totals of the other players, in seat order
}

// HighestOther returns the largest visible total among the other players,
// or 0 if there are none.
func (v View) HighestOther() int {
	highest := 0
	for _, total := range v.Others {
		if total > highest {
			highest = total
		}
	}
	return highest
}

// Agent represents any entity (human or scripted) that can make decisions
// for a player. Agents receive a View and return a decision; they never
// mutate game state.
type Agent interface {
	MakeDecision(view View) Decision
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(view View) Decision

// MakeDecision calls f(view)
func (f AgentFunc) MakeDecision(view View) Decision {
	return f(view)
}
