package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing settings file"`
	Output string `short:"o" name:"output" help:"Directory to write docsite.yaml into"`
}

func (i *InitCmd) Run(globals *Global, root *CLI) error {
	// If the user specified an output directory, place the settings there as "docsite.yaml".
	if i.Output != "" {
		return RunInit(globals, filepath.Join(i.Output, DefaultConfigPath), i.Force)
	}
	return RunInit(globals, root.Config, i.Force)
}

func RunInit(globals *Global, configPath string, force bool) error {
	_, _ = fmt.Fprintf(globals.Out, "Writing settings to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		_, _ = fmt.Fprintln(globals.Out, "Initialization failed")
		return err
	}
	_, _ = fmt.Fprintln(globals.Out, "initialized successfully")
	return nil
}
