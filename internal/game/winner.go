package game

import "sort"

// BustLimit is the highest score that can still win
const BustLimit = 21

// NoWinner is returned by DetermineWinner when nobody wins
const NoWinner = -1

// Standing is one player's final result
type Standing struct {
	Name  string
	Score int
}

// Busted reports whether the score is over BustLimit
func (s Standing) Busted() bool {
	return s.Score > BustLimit
}

// Outcome is the result of a finished game
type Outcome struct {
	SessionID string
	Standings []Standing // In seat order
	Winner    int        // Index into Standings, or NoWinner
	Rounds    int        // Playing rounds, including the final all-pass round
	Draws     int        // Visible cards taken after the deal
}

// HasWinner reports whether somebody won
func (o *Outcome) HasWinner() bool {
	return o.Winner != NoWinner
}

// WinnerStanding returns the winner's standing and true, or false if there
// is no winner.
func (o *Outcome) WinnerStanding() (Standing, bool) {
	if !o.HasWinner() {
		return Standing{}, false
	}
	return o.Standings[o.Winner], true
}

// adjustedScore ranks a busted score as zero
func adjustedScore(score int) int {
	if score > BustLimit {
		return 0
	}
	return score
}

// DetermineWinner returns the index of the winning score, or NoWinner.
//
// Scores over BustLimit rank as zero. If the two highest ranked scores are
// equal nobody wins, which also covers everyone busting. Only the top two
// are compared; a three-way tie is treated like a two-way tie. Otherwise
// the first score in list order equal to the top ranked score wins.
func DetermineWinner(scores []int) int {
	if len(scores) == 0 {
		return NoWinner
	}

	adjusted := make([]int, len(scores))
	for i, score := range scores {
		adjusted[i] = adjustedScore(score)
	}
	sort.Ints(adjusted)

	top := adjusted[len(adjusted)-1]
	if len(adjusted) >= 2 && adjusted[len(adjusted)-2] == top {
		return NoWinner
	}

	for i, score := range scores {
		if score == top {
			return i
		}
	}
	// A lone busted score ranks as zero but matches no raw score
	return NoWinner
}
