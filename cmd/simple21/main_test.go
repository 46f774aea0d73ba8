package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/simple21/internal/config"
	"github.com/lox/simple21/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(stdin string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		Config: config.Default(),
		Logger: log.New(io.Discard),
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
	}, &out
}

func TestPlayTranscript(t *testing.T) {
	// Passing at every prompt; closed input afterwards also passes.
	app, out := testApp("Ada\nn\nn\nn\n")

	cmd := &PlayCmd{Seed: 42, NoColor: true}
	require.NoError(t, cmd.Run(app))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Welcome to the game of 21!", lines[0])
	assert.Equal(t, 1, strings.Count(out.String(), "Welcome to the game of 21!"))
	assert.Contains(t, out.String(), "What is your name?")
	assert.Contains(t, out.String(), "Ada takes a hidden card.")
	assert.Contains(t, out.String(), "Ada passes.")

	for _, name := range []string{"Ada", "Paul", "Tim", "Lauren"} {
		assert.Contains(t, out.String(), name+" has ")
	}
	last := lines[len(lines)-1]
	assert.True(t, last == "No one wins!" || strings.HasSuffix(last, "points!"), "last line: %q", last)
}

func TestPlayIsReproducibleWithSeed(t *testing.T) {
	run := func() string {
		app, out := testApp("")
		cmd := &PlayCmd{Name: "Ada", Seed: 7, NoColor: true}
		require.NoError(t, cmd.Run(app))
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestPlayNameFromFlagSkipsPrompt(t *testing.T) {
	app, out := testApp("")
	cmd := &PlayCmd{Name: "Bo", Seed: 1, NoColor: true}
	require.NoError(t, cmd.Run(app))
	assert.NotContains(t, out.String(), "What is your name?")
	assert.Contains(t, out.String(), "Bo takes a hidden card.")
}

func TestPlayVerboseShowsGameAndPhases(t *testing.T) {
	app, out := testApp("")
	cmd := &PlayCmd{Name: "Ada", Seed: 5, NoColor: true, Verbose: true}
	require.NoError(t, cmd.Run(app))

	assert.Contains(t, out.String(), "\nGame ")
	assert.Contains(t, out.String(), "-- Playing --")
	assert.Contains(t, out.String(), "-- Finished --")
	assert.Equal(t, 1, strings.Count(out.String(), "Welcome to the game of 21!"))
}

func TestPlaySeatsExactlyFourPlayers(t *testing.T) {
	for _, opponents := range [][]string{{"Paul"}, {"Paul", "Tim", "Lauren", "Bo"}} {
		app, out := testApp("")
		app.Config.Game.Opponents = opponents
		cmd := &PlayCmd{Name: "Ada", Seed: 5, NoColor: true}
		assert.ErrorContains(t, cmd.Run(app), "3 opponents")
		assert.NotContains(t, out.String(), "takes a hidden card")
	}
}

func TestPlayRejectsNameTakenByOpponent(t *testing.T) {
	app, _ := testApp("")
	cmd := &PlayCmd{Name: "Paul", Seed: 5, NoColor: true}
	assert.ErrorContains(t, cmd.Run(app), "already taken")
}

func TestPlayReasksNameTakenByOpponent(t *testing.T) {
	app, out := testApp("Tim\nAda\n")
	cmd := &PlayCmd{Seed: 5, NoColor: true}
	require.NoError(t, cmd.Run(app))
	assert.Contains(t, out.String(), "Tim is already playing, pick another name.")
	assert.Contains(t, out.String(), "Ada takes a hidden card.")
}

func TestPlayWritesRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	app, _ := testApp("")
	cmd := &PlayCmd{Name: "Ada", Seed: 3, NoColor: true, Record: path}
	require.NoError(t, cmd.Run(app))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rec, err := record.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.Seed)
	assert.Equal(t, []string{"Ada", "Paul", "Tim", "Lauren"}, rec.Players)
	assert.Len(t, rec.Scores, 4)
	assert.Contains(t, rec.Actions, "p1 h")
	assert.Contains(t, rec.Actions, "p1 p")
}

func TestSimulate(t *testing.T) {
	app, out := testApp("")
	cmd := &SimulateCmd{Sessions: 200, Workers: 2, Seed: 11}
	require.NoError(t, cmd.Run(app))
	assert.Contains(t, out.String(), "Seed: 11")
	assert.Contains(t, out.String(), "Games played:     200")
	assert.Contains(t, out.String(), "Lauren")
}

func TestLoadConfigOverrides(t *testing.T) {
	cli := &CLI{Config: "does-not-exist.hcl", LogLevel: "debug"}
	cfg, err := cli.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	cli.LogLevel = "shouty"
	_, err = cli.loadConfig()
	assert.Error(t, err)
}
