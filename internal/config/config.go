// Package config loads game settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when none is named
const DefaultFile = "simple21.hcl"

// Opponents is the number of scripted players at the table. With the human
// that makes the four seats of a game.
const Opponents = 3

// Config represents the complete configuration
type Config struct {
	Game       GameSettings
	Log        LogSettings
	Simulation SimulationSettings
}

// file mirrors Config with every block optional
type file struct {
	Game       *GameSettings       `hcl:"game,block"`
	Log        *LogSettings        `hcl:"log,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings controls the table and the scripted players
type GameSettings struct {
	HumanName        string   `hcl:"human_name,optional"`
	Opponents        []string `hcl:"opponents,optional"`
	DrawLimit        int      `hcl:"draw_limit,optional"`
	VisibleThreshold int      `hcl:"visible_threshold,optional"`
	Seed             int64    `hcl:"seed,optional"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulationSettings controls batch simulations
type SimulationSettings struct {
	Sessions  int `hcl:"sessions,optional"`
	Workers   int `hcl:"workers,optional"`
	MaxRounds int `hcl:"max_rounds,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Opponents:        []string{"Paul", "Tim", "Lauren"},
			DrawLimit:        16,
			VisibleThreshold: 10,
		},
		Log: LogSettings{
			Level: "warn",
		},
		Simulation: SimulationSettings{
			Sessions:  10000,
			Workers:   4,
			MaxRounds: 64,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; fields left out of the file are filled from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	parsed, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded file
	diags = gohcl.DecodeBody(parsed.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if decoded.Game != nil {
		config.Game = *decoded.Game
	}
	if decoded.Log != nil {
		config.Log = *decoded.Log
	}
	if decoded.Simulation != nil {
		config.Simulation = *decoded.Simulation
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if len(c.Game.Opponents) == 0 {
		c.Game.Opponents = defaults.Game.Opponents
	}
	if c.Game.DrawLimit == 0 {
		c.Game.DrawLimit = defaults.Game.DrawLimit
	}
	if c.Game.VisibleThreshold == 0 {
		c.Game.VisibleThreshold = defaults.Game.VisibleThreshold
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Simulation.Sessions == 0 {
		c.Simulation.Sessions = defaults.Simulation.Sessions
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = defaults.Simulation.Workers
	}
	if c.Simulation.MaxRounds == 0 {
		c.Simulation.MaxRounds = defaults.Simulation.MaxRounds
	}
}

// Validate checks that the configuration describes a playable game
func (c *Config) Validate() error {
	if len(c.Game.Opponents) != Opponents {
		return fmt.Errorf("exactly %d opponents are required, got %d", Opponents, len(c.Game.Opponents))
	}
	seen := make(map[string]bool, len(c.Game.Opponents)+1)
	if c.Game.HumanName != "" {
		seen[c.Game.HumanName] = true
	}
	for _, name := range c.Game.Opponents {
		if name == "" {
			return errors.New("opponent names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = true
	}
	if c.Game.DrawLimit < 1 || c.Game.DrawLimit > 21 {
		return fmt.Errorf("draw_limit must be between 1 and 21, got %d", c.Game.DrawLimit)
	}
	if c.Game.VisibleThreshold < 1 {
		return fmt.Errorf("visible_threshold must be positive, got %d", c.Game.VisibleThreshold)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Simulation.Sessions < 0 || c.Simulation.Workers < 0 || c.Simulation.MaxRounds < 0 {
		return errors.New("simulation settings must not be negative")
	}
	return nil
}
