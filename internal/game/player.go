package game

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// Player is a participant in a game of 21. It owns its hand and its pass
// state; the decision to draw is delegated to an Agent.
type Player struct {
	Name string

	agent   Agent
	seat    int
	hidden  int // 0 until the hidden card is dealt
	visible int
	passed  bool

	bus   EventBus
	clock quartz.Clock
}

// NewPlayer creates a player that decides with agent
func NewPlayer(name string, agent Agent) *Player {
	return &Player{
		Name:  name,
		agent: agent,
	}
}

// attach seats the player at a dealer's table and wires its event bus and
// clock. Events carry the seat so players sharing a name stay distinct.
func (p *Player) attach(seat int, bus EventBus, clock quartz.Clock) {
	p.seat = seat
	p.bus = bus
	p.clock = clock
}

func (p *Player) publish(event GameEvent) {
	if p.bus != nil {
		p.bus.Publish(event)
	}
}

func (p *Player) now() time.Time {
	if p.clock == nil {
		return time.Time{}
	}
	return p.clock.Now()
}

// TakeHiddenCard puts card face down in the player's hand. A player holds
// exactly one hidden card; dealing a second one is a programming error.
func (p *Player) TakeHiddenCard(card int) {
	if p.hidden != 0 {
		panic(fmt.Sprintf("game: %s already holds a hidden card", p.Name))
	}
	p.hidden = card
	p.publish(NewHiddenCardEvent(p.Name, p.seat, p.now()))
}

// TakeVisibleCard adds card to the player's face-up total. Taking a card
// after passing is a programming error.
func (p *Player) TakeVisibleCard(card int) {
	if p.passed {
		panic(fmt.Sprintf("game: %s drew after passing", p.Name))
	}
	p.visible += card
	p.publish(NewVisibleCardEvent(p.Name, p.seat, card, p.visible, p.now()))
}

// Score returns the total of all the player's cards, hidden included
func (p *Player) Score() int {
	return p.visible + p.hidden
}

// VisibleTotal returns the sum of the player's face-up cards
func (p *Player) VisibleTotal() int {
	return p.visible
}

// HasPassed reports whether the player has stopped drawing
func (p *Player) HasPassed() bool {
	return p.passed
}

// Pass marks the player as done drawing for the rest of the game
func (p *Player) Pass(reasoning string) {
	if p.passed {
		return
	}
	p.passed = true
	p.publish(NewPassEvent(p.Name, p.seat, reasoning, p.now()))
}

// DecideDraw asks the player's agent whether to take another card, given
// the visible totals of every other player in seat order. The agent never
// sees another player's hidden card.
func (p *Player) DecideDraw(others []int) Decision {
	if p.passed {
		panic(fmt.Sprintf("game: %s asked to decide after passing", p.Name))
	}
	if p.agent == nil {
		return Decision{Action: Pass, Reasoning: "no agent"}
	}

	view := View{
		Name:    p.Name,
		Score:   p.Score(),
		Visible: p.visible,
		Others:  append([]int(nil), others...),
	}
	return p.agent.MakeDecision(view)
}

// String returns the player's name
func (p *Player) String() string {
	return p.Name
}
