package statistics

import (
	"math"
	"strings"
	"testing"

	"github.com/lox/simple21/internal/game"
)

func outcome(winner, rounds int, scores ...int) *game.Outcome {
	names := []string{"You", "Paul", "Tim", "Lauren"}
	standings := make([]game.Standing, len(scores))
	for i, score := range scores {
		standings[i] = game.Standing{Name: names[i], Score: score}
	}
	return &game.Outcome{Standings: standings, Winner: winner, Rounds: rounds, Draws: rounds}
}

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.NoWinnerRate() != 0 {
		t.Errorf("Expected no-winner rate of 0 for empty stats, got %f", stats.NoWinnerRate())
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	stats.Add(outcome(0, 2, 20, 18, 17, 22))
	stats.Add(outcome(game.NoWinner, 3, 19, 19, 12, 8))
	stats.Add(outcome(game.NoWinner, 4, 22, 23, 24, 25))
	stats.Add(outcome(2, 3, 15, 22, 21, 10))

	if stats.Games != 4 {
		t.Fatalf("Expected 4 games, got %d", stats.Games)
	}
	if stats.NoWinner != 2 {
		t.Errorf("Expected 2 no-winner games, got %d", stats.NoWinner)
	}
	if stats.AllBusted != 1 {
		t.Errorf("Expected 1 all-bust game, got %d", stats.AllBusted)
	}
	if stats.Seats[0].Wins != 1 || stats.Seats[2].Wins != 1 {
		t.Errorf("Unexpected wins: %+v", stats.Seats)
	}
	if stats.Seats[3].Busts != 2 {
		t.Errorf("Expected Lauren to bust twice, got %d", stats.Seats[3].Busts)
	}
	if stats.MaxRounds != 4 {
		t.Errorf("Expected max rounds 4, got %d", stats.MaxRounds)
	}
	if math.Abs(stats.Mean()-3.0) > 1e-9 {
		t.Errorf("Expected mean rounds 3, got %f", stats.Mean())
	}
	if math.Abs(stats.Variance()-2.0/3.0) > 1e-9 {
		t.Errorf("Expected variance 2/3, got %f", stats.Variance())
	}
	if math.Abs(stats.MeanWinningScore()-20.5) > 1e-9 {
		t.Errorf("Expected mean winning score 20.5, got %f", stats.MeanWinningScore())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_Percentile(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []int{1, 2, 3, 4, 5} {
		stats.Add(outcome(game.NoWinner, r, 20, 20))
	}

	if stats.Median() != 3 {
		t.Errorf("Expected median 3, got %f", stats.Median())
	}
	if stats.Percentile(0) != 1 || stats.Percentile(1) != 5 {
		t.Errorf("Unexpected extremes: %f, %f", stats.Percentile(0), stats.Percentile(1))
	}
	if math.Abs(stats.Percentile(0.25)-2) > 1e-9 {
		t.Errorf("Expected p25 of 2, got %f", stats.Percentile(0.25))
	}
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(outcome(0, 2, 20, 18))
	stats.NoWinner++

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error when wins and no-winner games exceed games")
	}
}

func TestStatistics_Summary(t *testing.T) {
	stats := &Statistics{}
	stats.Add(outcome(1, 2, 12, 20))

	summary := stats.Summary()
	for _, want := range []string{"Games played:     1", "Paul", "100.0%"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary missing %q:\n%s", want, summary)
		}
	}
}
