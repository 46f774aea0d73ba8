package game

// Phase is the dealer's position in the game lifecycle
type Phase int

const (
	Dealing Phase = iota
	Playing
	Finished
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Dealing:
		return "Dealing"
	case Playing:
		return "Playing"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}
