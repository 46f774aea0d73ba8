// Package simulator plays batches of all-scripted games and aggregates
// their outcomes.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/simple21/internal/deck"
	"github.com/lox/simple21/internal/game"
	"github.com/lox/simple21/internal/randutil"
	"github.com/lox/simple21/internal/statistics"
)

// ErrNoSessions is returned when asked to simulate nothing
var ErrNoSessions = errors.New("no sessions to simulate")

// Config holds configuration for running simulations
type Config struct {
	Sessions         int
	Workers          int   // Concurrent sessions; 0 means GOMAXPROCS
	Seed             int64 // Base seed; 0 picks one
	MaxRounds        int   // Per-session hang guard; 0 means unlimited
	Players          []string
	DrawLimit        int
	VisibleThreshold int
	Logger           *log.Logger
	Clock            quartz.Clock
}

// Simulator runs batches of games
type Simulator struct {
	config Config
	seed   int64
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.DrawLimit == 0 {
		config.DrawLimit = game.DefaultDrawLimit
	}
	if config.VisibleThreshold == 0 {
		config.VisibleThreshold = game.DefaultVisibleThreshold
	}
	if len(config.Players) == 0 {
		config.Players = []string{"North", "East", "South", "West"}
	}
	return &Simulator{config: config}
}

// Seed returns the base seed used by the last Run
func (s *Simulator) Seed() int64 {
	return s.seed
}

// Run plays every session and returns the aggregated statistics. Session i
// is dealt from seed+i, so any single game can be replayed. The first
// failing session cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Sessions <= 0 {
		return nil, ErrNoSessions
	}

	s.seed = randutil.Resolve(s.config.Seed)
	s.config.Logger.Info("Starting simulation",
		"sessions", s.config.Sessions,
		"workers", s.config.Workers,
		"seed", s.seed)

	start := s.config.Clock.Now()
	outcomes := make([]*game.Outcome, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Sessions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.seed + int64(i)
			outcome, err := s.playSession(seed)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, seed, err)
			}
			outcomes[i] = outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, outcome := range outcomes {
		stats.Add(outcome)
	}
	stats.Elapsed = s.config.Clock.Since(start)

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"games", stats.Games,
		"no_winner", stats.NoWinner,
		"max_rounds", stats.MaxRounds,
		"elapsed", stats.Elapsed)
	return stats, nil
}

// playSession plays one all-scripted game dealt from seed
func (s *Simulator) playSession(seed int64) (*game.Outcome, error) {
	players := make([]*game.Player, len(s.config.Players))
	for i, name := range s.config.Players {
		players[i] = game.NewPlayer(name, &game.ScriptedAgent{
			DrawLimit:        s.config.DrawLimit,
			VisibleThreshold: s.config.VisibleThreshold,
		})
	}

	dealer := game.NewDealer(players, deck.NewDeck(randutil.New(seed)), s.config.Logger,
		game.WithClock(s.config.Clock),
		game.WithSessionID(fmt.Sprintf("sim-%d", seed)),
		game.WithMaxRounds(s.config.MaxRounds),
	)
	return dealer.Play()
}
