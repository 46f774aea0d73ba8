// Package deck produces card values for the game of 21.
//
// Cards are never tracked individually: every draw is an independent pick
// from the thirteen ranks of a standard suit, so the supply never runs out.
// Ten, Jack, Queen and King all count as ten, which makes a ten four times
// as likely as any other value.
package deck

import (
	rand "math/rand/v2"
)

const (
	// MinValue is the smallest card value (an Ace).
	MinValue = 1
	// MaxValue is the largest card value (a ten or a face card).
	MaxValue = 10
)

// ranks holds the value of each rank, Ace through King.
var ranks = [13]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}

// Deck draws card values from an injected random source.
type Deck struct {
	rng *rand.Rand
}

// NewDeck returns a deck drawing from rng. Use randutil.New for a seeded
// generator.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{rng: rng}
}

// Draw returns a card value in [MinValue, MaxValue].
func (d *Deck) Draw() int {
	return ranks[d.rng.IntN(len(ranks))]
}

// Probability returns the chance that a single draw yields value.
func Probability(value int) float64 {
	n := 0
	for _, v := range ranks {
		if v == value {
			n++
		}
	}
	return float64(n) / float64(len(ranks))
}
