package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lox/simple21/internal/game"
)

// SeatStats tracks results for one seat
type SeatStats struct {
	Name     string
	Wins     int
	Busts    int
	SumScore int
}

// Statistics aggregates the outcomes of many games
type Statistics struct {
	Games     int
	NoWinner  int
	AllBusted int // Games where every player went over 21

	// Rounds per game, for mean/variance/percentiles
	SumRounds  float64
	SumRounds2 float64
	Rounds     []float64
	MaxRounds  int

	Draws           int
	SumWinningScore int

	Seats []SeatStats // In seat order, taken from the first game

	Elapsed time.Duration
}

// Add incorporates a finished game
func (s *Statistics) Add(outcome *game.Outcome) {
	if s.Seats == nil {
		s.Seats = make([]SeatStats, len(outcome.Standings))
		for i, st := range outcome.Standings {
			s.Seats[i].Name = st.Name
		}
	}

	s.Games++
	rounds := float64(outcome.Rounds)
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Rounds = append(s.Rounds, rounds)
	if outcome.Rounds > s.MaxRounds {
		s.MaxRounds = outcome.Rounds
	}
	s.Draws += outcome.Draws

	busted := 0
	for i, st := range outcome.Standings {
		if i >= len(s.Seats) {
			break
		}
		s.Seats[i].SumScore += st.Score
		if st.Busted() {
			s.Seats[i].Busts++
			busted++
		}
	}
	if busted == len(outcome.Standings) {
		s.AllBusted++
	}

	if winner, ok := outcome.WinnerStanding(); ok {
		if outcome.Winner < len(s.Seats) {
			s.Seats[outcome.Winner].Wins++
		}
		s.SumWinningScore += winner.Score
	} else {
		s.NoWinner++
	}
}

// Wins returns the number of games won by any seat
func (s *Statistics) Wins() int {
	total := 0
	for _, seat := range s.Seats {
		total += seat.Wins
	}
	return total
}

// Mean returns the mean number of rounds per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// Variance returns the sample variance of rounds per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of rounds per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Percentile returns rounds per game at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Rounds))
	copy(sorted, s.Rounds)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Median returns the median rounds per game
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// WinRate returns the fraction of games won by seat
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.Seats) {
		return 0
	}
	return float64(s.Seats[seat].Wins) / float64(s.Games)
}

// NoWinnerRate returns the fraction of games nobody won
func (s *Statistics) NoWinnerRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.NoWinner) / float64(s.Games)
}

// MeanWinningScore returns the average score of winners
func (s *Statistics) MeanWinningScore() float64 {
	wins := s.Wins()
	if wins == 0 {
		return 0
	}
	return float64(s.SumWinningScore) / float64(wins)
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Rounds) != s.Games {
		return fmt.Errorf("rounds array length (%d) does not match games count (%d)",
			len(s.Rounds), s.Games)
	}

	if wins := s.Wins(); wins+s.NoWinner != s.Games {
		return fmt.Errorf("wins (%d) plus no-winner games (%d) do not add up to games (%d)",
			wins, s.NoWinner, s.Games)
	}

	if s.AllBusted > s.NoWinner {
		return fmt.Errorf("all-busted games (%d) exceed no-winner games (%d)", s.AllBusted, s.NoWinner)
	}

	return nil
}

// Summary renders a human-readable report
func (s *Statistics) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Games played:     %d", s.Games)
	if s.Elapsed > 0 {
		fmt.Fprintf(&b, " in %s", s.Elapsed.Round(time.Millisecond))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Rounds per game:  mean %.2f, sd %.2f, median %.0f, p99 %.0f, max %d\n",
		s.Mean(), s.StdDev(), s.Median(), s.Percentile(0.99), s.MaxRounds)
	fmt.Fprintf(&b, "No winner:        %d (%.1f%%), everyone bust %d\n",
		s.NoWinner, 100*s.NoWinnerRate(), s.AllBusted)
	fmt.Fprintf(&b, "Winning score:    mean %.2f\n", s.MeanWinningScore())

	for i, seat := range s.Seats {
		mean := 0.0
		if s.Games > 0 {
			mean = float64(seat.SumScore) / float64(s.Games)
		}
		fmt.Fprintf(&b, "  %-10s wins %6d (%5.1f%%)  busts %6d  mean score %.2f\n",
			seat.Name, seat.Wins, 100*s.WinRate(i), seat.Busts, mean)
	}

	return b.String()
}
