package commands

import (
	"context"

	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/render"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Output format: json, yaml, js" default:"json"`
}

func (s *ShowCmd) Run(ctx context.Context, globals *Global, root *CLI) error {
	format, err := render.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	cfg, err := root.loadConfig(globals)
	if err != nil {
		return err
	}
	out, err := generator.New().Resolve(ctx, cfg)
	if err != nil {
		return err
	}
	data, err := render.Encode(out, format)
	if err != nil {
		return err
	}
	_, err = globals.Out.Write(data)
	return err
}
