package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/simple21/internal/deck"
	"github.com/lox/simple21/internal/randutil"
)

// StackedSource deals a fixed sequence of cards, for deterministic tests.
// It panics when the sequence runs out.
type StackedSource struct {
	cards []int
	next  int
}

// NewStackedSource returns a source dealing cards in order
func NewStackedSource(cards ...int) *StackedSource {
	return &StackedSource{cards: cards}
}

// Draw returns the next stacked card
func (s *StackedSource) Draw() int {
	if s.next >= len(s.cards) {
		panic(fmt.Sprintf("game: stacked source exhausted after %d cards", len(s.cards)))
	}
	card := s.cards[s.next]
	s.next++
	return card
}

// Remaining returns how many stacked cards have not been dealt
func (s *StackedSource) Remaining() int {
	return len(s.cards) - s.next
}

// TestDealerOption configures test dealer creation
type TestDealerOption func(*testDealerBuilder)

type testDealerBuilder struct {
	seed    int64
	source  CardSource
	players []*Player
	opts    []DealerOption
}

// WithSeed deals from a seeded deck
func WithSeed(seed int64) TestDealerOption {
	return func(b *testDealerBuilder) { b.seed = seed }
}

// WithCards deals a fixed sequence of cards
func WithCards(cards ...int) TestDealerOption {
	return func(b *testDealerBuilder) { b.source = NewStackedSource(cards...) }
}

// WithPlayers seats the given players instead of four scripted ones
func WithPlayers(players ...*Player) TestDealerOption {
	return func(b *testDealerBuilder) { b.players = players }
}

// WithDealerOptions passes options through to NewDealer
func WithDealerOptions(opts ...DealerOption) TestDealerOption {
	return func(b *testDealerBuilder) { b.opts = append(b.opts, opts...) }
}

// ScriptedPlayers returns one scripted player per name
func ScriptedPlayers(names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, NewScriptedAgent())
	}
	return players
}

// NewTestDealer creates a dealer for testing with sensible defaults: four
// scripted players, a deck seeded with 42 and a silent logger.
func NewTestDealer(opts ...TestDealerOption) *Dealer {
	builder := &testDealerBuilder{seed: 42}
	for _, opt := range opts {
		opt(builder)
	}

	if builder.players == nil {
		builder.players = ScriptedPlayers("Alice", "Bob", "Charlie", "Dana")
	}
	if builder.source == nil {
		builder.source = deck.NewDeck(randutil.New(builder.seed))
	}

	return NewDealer(builder.players, builder.source, log.New(io.Discard), builder.opts...)
}
