// Package generator turns a loaded settings file into emitted site
// configuration files.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/config"
	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/gitinfo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/observability"
	"git.home.luguber.info/inful/docsite/internal/pkgmeta"
	"git.home.luguber.info/inful/docsite/internal/render"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Stage names reported to the metrics recorder.
const (
	StageResolve = "resolve"
	StageBuild   = "build"
	StageEncode  = "encode"
	StageWrite   = "write"
)

// Generator runs the resolve, build, encode and write stages.
type Generator struct {
	recorder metrics.Recorder
	force    bool
	newID    func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder. A nil recorder keeps the no-op default.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithForce rewrites output files even when their content is unchanged.
func WithForce(force bool) Option {
	return func(g *Generator) { g.force = force }
}

// New returns a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{
		recorder: metrics.NoopRecorder{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Report summarizes one generation run.
type Report struct {
	RunID    string
	Outcome  metrics.OutcomeLabel
	Site     site.SiteConfig
	Files    []render.WriteResult
	Duration time.Duration
}

// Written returns the number of files rewritten by the run.
func (r *Report) Written() int {
	n := 0
	for _, f := range r.Files {
		if !f.Skipped {
			n++
		}
	}
	return n
}

// Skipped returns the number of files left untouched because their content was unchanged.
func (r *Report) Skipped() int {
	return len(r.Files) - r.Written()
}

// ResolveInputs overlays the settings onto the built-in inputs and fills the
// values read from the project: the package.json description and the git
// origin when the repo is "auto".
//
// An explicit site.description wins over package.json, which wins over the
// built-in description. An empty manifest description keeps the built-in one.
func ResolveInputs(cfg *config.Config) (site.Inputs, error) {
	in := site.DefaultInputs()
	cfg.Site.Apply(&in)

	if cfg.Site.Description == "" && cfg.Site.PackageJSON != "" {
		m, err := pkgmeta.Read(cfg.Site.PackageJSON)
		if err != nil {
			return in, err
		}
		if summary := m.Summary(); summary != "" {
			in.Description = summary
		}
	}

	if cfg.Site.Repo == config.RepoAuto {
		repo, err := gitinfo.OriginURL(cfg.Site.RepoDir)
		if err != nil {
			return in, err
		}
		in.Theme.Repo = repo
	}
	return in, nil
}

// Resolve returns the validated site configuration described by cfg without
// writing anything.
func (g *Generator) Resolve(ctx context.Context, cfg *config.Config) (site.SiteConfig, error) {
	var in site.Inputs
	if err := g.stage(ctx, StageResolve, func(context.Context) error {
		var err error
		in, err = ResolveInputs(cfg)
		return err
	}); err != nil {
		return site.SiteConfig{}, err
	}

	var out site.SiteConfig
	err := g.stage(ctx, StageBuild, func(context.Context) error {
		out = site.Build(in)
		return site.Validate(out)
	})
	return out, err
}

// Run resolves, builds and validates the site configuration, then encodes and
// writes it once per configured format. The context is checked between
// stages and formats; files already written by a canceled run are kept.
func (g *Generator) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: g.newID()}
	ctx = observability.WithRunID(ctx, report.RunID)
	observability.DebugContext(ctx, "Generation started", logfields.Path(cfg.Output.Directory))

	err := g.run(ctx, cfg, report)

	report.Duration = time.Since(start)
	report.Outcome = outcomeFor(err)
	g.recorder.ObserveRunDuration(report.Duration)
	g.recorder.IncRunOutcome(report.Outcome)

	attrs := []slog.Attr{
		logfields.Outcome(string(report.Outcome)),
		logfields.DurationMS(float64(report.Duration.Microseconds()) / 1000),
		slog.Int("written", report.Written()),
		slog.Int("skipped", report.Skipped()),
	}
	if err != nil {
		observability.ErrorContext(ctx, "Generation failed", append(attrs, logfields.Error(err))...)
		return report, err
	}
	observability.InfoContext(ctx, "Generation completed", attrs...)
	return report, nil
}

func (g *Generator) run(ctx context.Context, cfg *config.Config, report *Report) error {
	formats, err := cfg.Output.OutputFormats()
	if err != nil {
		return err
	}

	out, err := g.Resolve(ctx, cfg)
	if err != nil {
		return err
	}
	report.Site = out

	writer := render.NewWriter(cfg.Output.Directory)
	writer.Force = g.force
	if cfg.Output.Clean {
		if err := writer.Clean(); err != nil {
			return err
		}
	}

	for _, f := range formats {
		var data []byte
		if err := g.stage(ctx, StageEncode, func(context.Context) error {
			var encErr error
			data, encErr = render.Encode(out, f)
			return encErr
		}); err != nil {
			return err
		}

		var res render.WriteResult
		if err := g.stage(ctx, StageWrite, func(context.Context) error {
			var writeErr error
			res, writeErr = writer.Write(f, data)
			return writeErr
		}); err != nil {
			return err
		}
		report.Files = append(report.Files, res)
		if res.Skipped {
			g.recorder.IncFileResult(string(f), metrics.FileSkipped)
		} else {
			g.recorder.IncFileResult(string(f), metrics.FileWritten)
		}
	}
	return nil
}

// stage runs fn unless ctx is already done, recording its duration and result.
func (g *Generator) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		g.recorder.IncStageResult(name, metrics.ResultCanceled)
		return derrors.Wrap(err, derrors.CategoryRuntime, derrors.SeverityError, "generation canceled").
			WithContext("stage", name)
	}
	start := time.Now()
	err := fn(observability.WithStage(ctx, name))
	g.recorder.ObserveStageDuration(name, time.Since(start))
	if err != nil {
		g.recorder.IncStageResult(name, metrics.ResultFailed)
		return err
	}
	g.recorder.IncStageResult(name, metrics.ResultSuccess)
	return nil
}

func outcomeFor(err error) metrics.OutcomeLabel {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}
