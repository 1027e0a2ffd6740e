package commands

import (
	"context"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/generator"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(ctx context.Context, globals *Global, root *CLI) error {
	cfg, err := root.loadConfig(globals)
	if err != nil {
		return err
	}
	out, err := generator.New().Resolve(ctx, cfg)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(globals.Out, "Configuration is valid\n")
	_, _ = fmt.Fprintf(globals.Out, "  title:   %s\n", out.Title)
	_, _ = fmt.Fprintf(globals.Out, "  navbar:  %s\n", strings.Join(out.Theme.Labels(), ", "))
	_, _ = fmt.Fprintf(globals.Out, "  plugins: %s\n", strings.Join(out.Plugins, ", "))
	_, _ = fmt.Fprintf(globals.Out, "  head:    %d tags\n", len(out.Head))
	return nil
}
