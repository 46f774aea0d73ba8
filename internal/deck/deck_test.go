package deck

import (
	"math"
	"testing"

	"github.com/lox/simple21/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawRange(t *testing.T) {
	d := NewDeck(randutil.New(1))
	for i := 0; i < 10000; i++ {
		v := d.Draw()
		require.GreaterOrEqual(t, v, MinValue)
		require.LessOrEqual(t, v, MaxValue)
	}
}

func TestDrawDistribution(t *testing.T) {
	const samples = 260000
	d := NewDeck(randutil.New(20240101))

	counts := make(map[int]int)
	for i := 0; i < samples; i++ {
		counts[d.Draw()]++
	}

	for v := MinValue; v <= MaxValue; v++ {
		want := Probability(v)
		got := float64(counts[v]) / samples
		// five standard errors
		tolerance := 5 * math.Sqrt(want*(1-want)/samples)
		assert.InDelta(t, want, got, tolerance, "value %d", v)
	}
}

func TestProbability(t *testing.T) {
	assert.InDelta(t, 4.0/13.0, Probability(10), 1e-12)
	for v := 1; v <= 9; v++ {
		assert.InDelta(t, 1.0/13.0, Probability(v), 1e-12)
	}
	assert.Zero(t, Probability(11))
	assert.Zero(t, Probability(0))
}

func TestSameSeedSameCards(t *testing.T) {
	a := NewDeck(randutil.New(99))
	b := NewDeck(randutil.New(99))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}
