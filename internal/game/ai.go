package game

import "fmt"

const (
	// DefaultDrawLimit is the highest score at which a scripted player
	// still draws.
	DefaultDrawLimit = 16
	// DefaultVisibleThreshold is the visible total an opponent must show
	// before a scripted player feels pressure to draw.
	DefaultVisibleThreshold = 10
)

// ScriptedAgent is the computer players' fixed policy: draw while its own
// score is at most DrawLimit and at least one opponent shows a visible
// total of VisibleThreshold or more.
type ScriptedAgent struct {
	DrawLimit        int
	VisibleThreshold int
}

// NewScriptedAgent returns an agent using the default thresholds
func NewScriptedAgent() *ScriptedAgent {
	return &ScriptedAgent{
		DrawLimit:        DefaultDrawLimit,
		VisibleThreshold: DefaultVisibleThreshold,
	}
}

// MakeDecision applies the scripted policy to view
func (a *ScriptedAgent) MakeDecision(view View) Decision {
	if view.Score > a.DrawLimit {
		return Decision{
			Action:    Pass,
			Reasoning: fmt.Sprintf("score %d above %d", view.Score, a.DrawLimit),
		}
	}

	highest := view.HighestOther()
	if highest < a.VisibleThreshold {
		return Decision{
			Action:    Pass,
			Reasoning: fmt.Sprintf("no opponent showing %d or more", a.VisibleThreshold),
		}
	}

	return Decision{
		Action:    Draw,
		Reasoning: fmt.Sprintf("score %d, opponent showing %d", view.Score, highest),
	}
}
