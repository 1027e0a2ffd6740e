// Package commands implements the docsite command-line interface.
package commands

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/observability"
)

// DefaultConfigPath is the settings file read when --config is not given.
const DefaultConfigPath = "docsite.yaml"

// Global holds state shared by all subcommands.
type Global struct {
	// Out receives command output meant for the user or for piping.
	Out    io.Writer
	Logger *slog.Logger
}

// NewGlobal returns the Global used by the docsite binary.
func NewGlobal() *Global {
	return &Global{Out: os.Stdout, Logger: slog.Default()}
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Settings file path" default:"docsite.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Write the site configuration files"`
	Show     ShowCmd     `cmd:"" help:"Print the site configuration"`
	Validate ValidateCmd `cmd:"" help:"Validate the settings and the resulting site configuration"`
	Init     InitCmd     `cmd:"" help:"Write an example settings file"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the settings or package.json change"`
}

// AfterApply runs after flag parsing; it installs a bootstrap logger until
// the settings file is read.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the settings file and reconfigures logging from it. A
// missing file yields the built-in site with default output settings.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(c.Config); errors.Is(err, fs.ErrNotExist) {
		slog.Info("No settings file found, using built-in site configuration", logfields.Path(c.Config))
		cfg = config.Default()
	} else {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := observability.NewLogger(os.Stderr, cfg.Monitoring.Logging, c.Verbose)
	slog.SetDefault(logger)
	g.Logger = logger
	return cfg, nil
}
