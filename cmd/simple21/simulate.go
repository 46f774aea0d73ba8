package main

import (
	"context"
	"fmt"

	"github.com/lox/simple21/cmd/simple21/shared"
	"github.com/lox/simple21/internal/simulator"
)

type SimulateCmd struct {
	Sessions  int   `short:"s" help:"Number of games to play (overrides config)"`
	Workers   int   `short:"w" help:"Games played concurrently (overrides config)"`
	Seed      int64 `help:"Base seed (0 for random)"`
	MaxRounds int   `help:"Abort a game after this many rounds (overrides config)"`
}

func (c *SimulateCmd) Run(app *App) error {
	cfg := app.Config.Simulation
	if c.Sessions > 0 {
		cfg.Sessions = c.Sessions
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if c.MaxRounds > 0 {
		cfg.MaxRounds = c.MaxRounds
	}
	seed := c.Seed
	if seed == 0 {
		seed = app.Config.Game.Seed
	}

	seat := app.Config.Game.HumanName
	if seat == "" {
		seat = "Human"
	}
	names := append([]string{seat}, app.Config.Game.Opponents...)

	ctx, stop := shared.SetupSignalHandler(context.Background(), app.Logger)
	defer stop()

	sim := simulator.New(simulator.Config{
		Sessions:         cfg.Sessions,
		Workers:          cfg.Workers,
		Seed:             seed,
		MaxRounds:        cfg.MaxRounds,
		Players:          names,
		DrawLimit:        app.Config.Game.DrawLimit,
		VisibleThreshold: app.Config.Game.VisibleThreshold,
		Logger:           app.Logger,
	})

	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintf(app.Stdout, "Seed: %d\n", sim.Seed())
	fmt.Fprint(app.Stdout, stats.Summary())
	return nil
}
