package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/lox/simple21/internal/config"
	"github.com/lox/simple21/internal/console"
	"github.com/lox/simple21/internal/deck"
	"github.com/lox/simple21/internal/game"
	"github.com/lox/simple21/internal/randutil"
	"github.com/lox/simple21/internal/record"
)

type PlayCmd struct {
	Name    string `short:"n" help:"Your name (skips the prompt)"`
	Seed    int64  `help:"Deal from this seed (0 for random)"`
	NoColor bool   `help:"Disable colored output"`
	Reasons bool   `help:"Show why each player passed"`
	Verbose bool   `help:"Show the game id and each phase of play"`
	Record  string `type:"path" help:"Write a TOML record of the game to this file"`
}

func (c *PlayCmd) Run(app *App) error {
	cfg := app.Config
	logger := app.Logger
	if len(cfg.Game.Opponents) != config.Opponents {
		return fmt.Errorf("a game seats you and %d opponents, got %d opponents", config.Opponents, len(cfg.Game.Opponents))
	}

	styles := console.NewStyles(app.Stdout, !c.NoColor)
	prompter := console.NewPrompter(app.Stdin, app.Stdout, styles)

	fmt.Fprintln(app.Stdout, styles.Welcome.Render(game.WelcomeMessage))

	name := c.Name
	if name == "" {
		name = cfg.Game.HumanName
	}
	if name == "" {
		var err error
		if name, err = prompter.AskName(cfg.Game.Opponents...); err != nil {
			return err
		}
	}
	if slices.Contains(cfg.Game.Opponents, name) {
		return fmt.Errorf("player name %q is already taken by an opponent", name)
	}

	players := []*game.Player{game.NewPlayer(name, game.NewHumanAgent(prompter.Prompt()))}
	for _, opponent := range cfg.Game.Opponents {
		players = append(players, game.NewPlayer(opponent, &game.ScriptedAgent{
			DrawLimit:        cfg.Game.DrawLimit,
			VisibleThreshold: cfg.Game.VisibleThreshold,
		}))
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	seed = randutil.Resolve(seed)

	bus := game.NewEventBus()
	bus.Subscribe(console.NewTranscript(app.Stdout, styles, game.FormattingOptions{
		ShowReasonings: c.Reasons,
		ShowPhases:     c.Verbose,
		ShowSessionID:  c.Verbose,
		OmitWelcome:    true,
	}))
	bus.Subscribe(game.NewLogSubscriber(logger))
	recorder := record.NewRecorder(seed)
	bus.Subscribe(recorder)

	dealer := game.NewDealer(players, deck.NewDeck(randutil.New(seed)), logger, game.WithEventBus(bus))
	logger.Info("Dealing", "session", dealer.SessionID(), "seed", seed, "human", name)

	if _, err := dealer.Play(); err != nil {
		return err
	}

	if c.Record == "" {
		return nil
	}
	return writeRecord(c.Record, recorder.Record())
}

func writeRecord(path string, rec *record.GameRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create record file: %w", err)
	}
	if err := record.Encode(f, rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}
	return f.Close()
}
