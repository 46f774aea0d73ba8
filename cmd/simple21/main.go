package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/simple21/cmd/simple21/shared"
	"github.com/lox/simple21/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to HCL config file" default:"${config_file}"`
	LogLevel string           `help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string           `help:"Write logs to this file instead of stderr (overrides config)"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play one game of 21 against the computer"`
	Simulate SimulateCmd `cmd:"" help:"Play many computer-only games and report statistics"`
}

// App carries what every command needs
type App struct {
	Config *config.Config
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("simple21"),
		kong.Description("A simplified game of 21 against three computer players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)

	cfg, err := cli.loadConfig()
	ctx.FatalIfErrorf(err)

	logger, closeLog, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.File)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&App{
		Config: cfg,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
	if cerr := closeLog(); cerr != nil {
		logger.Error("Failed to close log file", "error", cerr)
	}
	ctx.FatalIfErrorf(err)
}

func (cli *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
