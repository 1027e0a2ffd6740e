package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
	Force    bool          `help:"Rewrite files even when unchanged"`
}

func (w *WatchCmd) Run(ctx context.Context, globals *Global, root *CLI) error {
	cfg, err := root.loadConfig(globals)
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Monitoring.Metrics.Enabled {
		reg := prom.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)
		stop := serveMetrics(cfg.Monitoring.Metrics, reg)
		defer stop()
	}
	gen := generator.New(generator.WithRecorder(recorder), generator.WithForce(w.Force))

	if _, err := gen.Run(ctx, cfg); err != nil {
		return err
	}

	var watcher *watch.Watcher
	watcher, err = watch.New([]string{root.Config, cfg.Site.PackageJSON}, func(ctx context.Context) {
		next, err := root.loadConfig(globals)
		if err != nil {
			slog.Error("Settings reload failed, keeping previous settings", logfields.Error(err))
			next = cfg
		}
		trackManifest(watcher, cfg, next)
		cfg = next
		if _, err := gen.Run(ctx, cfg); err != nil {
			slog.Error("Regeneration failed", logfields.Error(err))
		}
	}, watch.WithDebounce(w.Debounce))
	if err != nil {
		return err
	}

	slog.Info("Watching for changes", slog.Any("files", watcher.Files()))
	return watcher.Run(ctx)
}

// trackManifest watches the package.json named by reloaded settings when it
// differs from the one watched so far.
func trackManifest(watcher *watch.Watcher, prev, next *config.Config) {
	path := next.Site.PackageJSON
	if path == "" || path == prev.Site.PackageJSON {
		return
	}
	if err := watcher.Add(path); err != nil {
		slog.Warn("Cannot watch package manifest; its changes will not trigger regeneration",
			logfields.Path(path), logfields.Error(err))
		return
	}
	slog.Info("Watching package manifest", logfields.Path(path))
}

// serveMetrics starts the metrics endpoint and returns a function that shuts it down.
func serveMetrics(m config.MonitoringMetrics, reg *prom.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle(m.Path, metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: m.Listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("Serving metrics", slog.String("listen", m.Listen), logfields.Path(m.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
