package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyPlayed is returned when Play is called on a finished dealer
	ErrAlreadyPlayed = errors.New("game already played")
	// ErrTooFewPlayers is returned when fewer than two players are seated
	ErrTooFewPlayers = errors.New("at least two players are required")
	// ErrRoundLimit is returned when play exceeds the configured round limit
	ErrRoundLimit = errors.New("round limit exceeded")
)

// CardSource supplies card values
type CardSource interface {
	Draw() int
}

// DealerOption configures a Dealer
type DealerOption func(*Dealer)

// WithEventBus publishes game events on bus instead of a private one
func WithEventBus(bus EventBus) DealerOption {
	return func(d *Dealer) { d.bus = bus }
}

// WithClock stamps events using clock
func WithClock(clock quartz.Clock) DealerOption {
	return func(d *Dealer) { d.clock = clock }
}

// WithSessionID overrides the generated session ID
func WithSessionID(id string) DealerOption {
	return func(d *Dealer) { d.sessionID = id }
}

// WithMaxRounds aborts play with ErrRoundLimit after n rounds. Zero means
// no limit.
func WithMaxRounds(n int) DealerOption {
	return func(d *Dealer) { d.maxRounds = n }
}

// Dealer runs a single game: it deals, offers cards until every player has
// passed, and scores the result.
type Dealer struct {
	players   []*Player
	source    CardSource
	logger    *log.Logger
	bus       EventBus
	clock     quartz.Clock
	sessionID string
	maxRounds int

	phase  Phase
	played bool
	rounds int
	draws  int
}

// NewDealer seats players in the given order
func NewDealer(players []*Player, source CardSource, logger *log.Logger, opts ...DealerOption) *Dealer {
	d := &Dealer{
		players: players,
		source:  source,
		logger:  logger,
		phase:   Dealing,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	if d.bus == nil {
		d.bus = NewEventBus()
	}
	if d.clock == nil {
		d.clock = quartz.NewReal()
	}
	if d.sessionID == "" {
		d.sessionID = newSessionID()
	}
	d.logger = d.logger.With("session", d.sessionID)

	for i, p := range d.players {
		p.attach(i, d.bus, d.clock)
	}
	return d
}

// newSessionID returns a time-ordered UUIDv7, falling back to a random
// UUID if the clock sequence cannot be read.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// GetEventBus returns the event bus for subscribing to game events
func (d *Dealer) GetEventBus() EventBus {
	return d.bus
}

// SessionID returns the identifier of this game
func (d *Dealer) SessionID() string {
	return d.sessionID
}

// Phase returns the dealer's current phase
func (d *Dealer) Phase() Phase {
	return d.phase
}

// Players returns the seated players in seat order
func (d *Dealer) Players() []*Player {
	out := make([]*Player, len(d.players))
	copy(out, d.players)
	return out
}

// Play runs the game from the deal to the final result
func (d *Dealer) Play() (*Outcome, error) {
	if d.played {
		return nil, ErrAlreadyPlayed
	}
	if len(d.players) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(d.players))
	}
	d.played = true

	names := make([]string, len(d.players))
	for i, p := range d.players {
		names[i] = p.Name
	}
	d.logger.Debug("Starting game", "players", names)
	d.bus.Publish(NewGameStartEvent(d.sessionID, names, d.clock.Now()))

	d.deal()
	d.setPhase(Playing)

	if err := d.playRounds(); err != nil {
		return nil, err
	}

	d.setPhase(Finished)
	outcome := d.score()

	if winner, ok := outcome.WinnerStanding(); ok {
		d.logger.Info("Game finished", "winner", winner.Name, "score", winner.Score, "rounds", outcome.Rounds)
	} else {
		d.logger.Info("Game finished with no winner", "rounds", outcome.Rounds)
	}
	d.bus.Publish(NewGameEndEvent(outcome, d.clock.Now()))

	return outcome, nil
}

func (d *Dealer) setPhase(next Phase) {
	d.logger.Debug("Phase change", "from", d.phase, "to", next)
	d.bus.Publish(NewPhaseChangeEvent(d.phase, next, d.clock.Now()))
	d.phase = next
}

// deal gives each player, in seat order, a hidden card then a visible card
func (d *Dealer) deal() {
	for _, p := range d.players {
		p.TakeHiddenCard(d.source.Draw())
		p.TakeVisibleCard(d.source.Draw())
	}
}

// playRounds offers a card to every player still in, round after round,
// until a round passes with nobody drawing.
func (d *Dealer) playRounds() error {
	for {
		if d.maxRounds > 0 && d.rounds >= d.maxRounds {
			return fmt.Errorf("%w: %d rounds", ErrRoundLimit, d.maxRounds)
		}
		d.rounds++

		drew := false
		for i, p := range d.players {
			if p.HasPassed() {
				continue
			}

			decision := p.DecideDraw(d.visibleTotalsExcept(i))
			d.logger.Debug("Player decision",
				"round", d.rounds,
				"player", p.Name,
				"action", decision.Action,
				"reasoning", decision.Reasoning)

			if !decision.Draws() {
				p.Pass(decision.Reasoning)
				continue
			}

			p.TakeVisibleCard(d.source.Draw())
			d.draws++
			drew = true
		}

		if !drew {
			return nil
		}
	}
}

// visibleTotalsExcept returns every other player's visible total
func (d *Dealer) visibleTotalsExcept(seat int) []int {
	totals := make([]int, 0, len(d.players)-1)
	for i, p := range d.players {
		if i == seat {
			continue
		}
		totals = append(totals, p.VisibleTotal())
	}
	return totals
}

func (d *Dealer) score() *Outcome {
	standings := make([]Standing, len(d.players))
	scores := make([]int, len(d.players))
	for i, p := range d.players {
		standings[i] = Standing{Name: p.Name, Score: p.Score()}
		scores[i] = p.Score()
	}

	return &Outcome{
		SessionID: d.sessionID,
		Standings: standings,
		Winner:    DetermineWinner(scores),
		Rounds:    d.rounds,
		Draws:     d.draws,
	}
}
