// Package record captures a finished game as a TOML document that can be
// replayed by eye or diffed between runs.
package record

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/simple21/internal/game"
)

// ErrIncomplete is returned when encoding a record whose game has not ended
var ErrIncomplete = errors.New("record: game has not finished")

// GameRecord is one game in encoded form. Actions use seat tags p1..pN:
// "p1 h" for the hidden card, "p1 t 7" for a visible card and "p1 p" for a
// pass.
type GameRecord struct {
	Session    string   `toml:"session"`
	Seed       int64    `toml:"seed,omitempty"`
	Time       string   `toml:"time,omitempty"`
	Players    []string `toml:"players"`
	Actions    []string `toml:"actions"`
	Scores     []int    `toml:"scores"`
	Winner     string   `toml:"winner,omitempty"`
	WinnerSeat int      `toml:"winner_seat,omitempty"` // one-based, 0 when no one wins
	Rounds     int      `toml:"rounds"`
	Draws      int      `toml:"draws"`
}

// Encode writes the record to w in TOML format
func Encode(w io.Writer, rec *GameRecord) error {
	if rec == nil {
		return fmt.Errorf("record: game record is nil")
	}
	if rec.Scores == nil {
		return ErrIncomplete
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(rec)
}

// Decode reads a record written by Encode
func Decode(r io.Reader) (*GameRecord, error) {
	var rec GameRecord
	if _, err := toml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("record: decode: %w", err)
	}
	return &rec, nil
}

// Recorder builds a GameRecord from the events of one game
type Recorder struct {
	rec GameRecord
}

// NewRecorder creates a recorder for a game dealt from seed
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		rec: GameRecord{Seed: seed},
	}
}

// OnEvent implements game.EventSubscriber
func (r *Recorder) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.GameStartEvent:
		r.rec.Session = e.SessionID
		r.rec.Players = append([]string(nil), e.Players...)
		if !e.Timestamp().IsZero() {
			r.rec.Time = e.Timestamp().UTC().Format(time.RFC3339)
		}
	case game.HiddenCardEvent:
		r.action(e.Seat, "h")
	case game.VisibleCardEvent:
		r.action(e.Seat, fmt.Sprintf("t %d", e.Card))
	case game.PassEvent:
		r.action(e.Seat, "p")
	case game.GameEndEvent:
		if e.Outcome == nil {
			return
		}
		r.rec.Scores = make([]int, len(e.Outcome.Standings))
		for i, s := range e.Outcome.Standings {
			r.rec.Scores[i] = s.Score
		}
		if winner, ok := e.Outcome.WinnerStanding(); ok {
			r.rec.Winner = winner.Name
			r.rec.WinnerSeat = e.Outcome.Winner + 1
		}
		r.rec.Rounds = e.Outcome.Rounds
		r.rec.Draws = e.Outcome.Draws
	}
}

func (r *Recorder) action(seat int, act string) {
	r.rec.Actions = append(r.rec.Actions, fmt.Sprintf("p%d %s", seat+1, act))
}

// Record returns the record built so far
func (r *Recorder) Record() *GameRecord {
	rec := r.rec
	return &rec
}

// Finished reports whether the game end has been recorded
func (r *Recorder) Finished() bool {
	return r.rec.Scores != nil
}

// String renders the record as TOML, or an empty string when incomplete
func (r *Recorder) String() string {
	var b strings.Builder
	if err := Encode(&b, r.Record()); err != nil {
		return ""
	}
	return b.String()
}
