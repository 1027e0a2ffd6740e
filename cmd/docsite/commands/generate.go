package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/generator"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output  string   `short:"o" help:"Output directory (overrides output.directory)"`
	Formats []string `short:"f" name:"format" help:"Formats to emit: json, yaml, js (overrides output.formats)"`
	Force   bool     `help:"Rewrite files even when unchanged"`
	Clean   bool     `help:"Remove previously emitted config files first"`
}

func (g *GenerateCmd) Run(ctx context.Context, globals *Global, root *CLI) error {
	cfg, err := root.loadConfig(globals)
	if err != nil {
		return err
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}
	if len(g.Formats) > 0 {
		cfg.Output.Formats = g.Formats
	}
	if g.Clean {
		cfg.Output.Clean = true
	}

	report, err := generator.New(generator.WithForce(g.Force)).Run(ctx, cfg)
	if err != nil {
		return err
	}
	for _, f := range report.Files {
		status := "wrote"
		if f.Skipped {
			status = "unchanged"
		}
		_, _ = fmt.Fprintf(globals.Out, "%-9s %s\n", status, f.Path)
	}
	return nil
}
