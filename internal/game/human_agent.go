package game

import (
	"fmt"
)

// PromptFunc asks a person for a decision
type PromptFunc func(view View) (Decision, error)

// HumanAgent represents a human player that interacts through a user
// interface
type HumanAgent struct {
	promptFunc PromptFunc
}

// NewHumanAgent creates a new human agent with a prompt function
func NewHumanAgent(promptFunc PromptFunc) *HumanAgent {
	return &HumanAgent{
		promptFunc: promptFunc,
	}
}

// MakeDecision prompts the human for a decision. Without a prompt, or if
// reading the answer fails, the human passes.
func (h *HumanAgent) MakeDecision(view View) Decision {
	if h.promptFunc == nil {
		return Decision{
			Action:    Pass,
			Reasoning: "No user interface available",
		}
	}

	decision, err := h.promptFunc(view)
	if err != nil {
		return Decision{
			Action:    Pass,
			Reasoning: fmt.Sprintf("Input error: %v", err),
		}
	}

	return decision
}
