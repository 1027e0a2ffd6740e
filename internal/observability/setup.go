package observability

import (
	"io"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// NewLogger builds a logger from the monitoring settings. verbose forces debug level.
func NewLogger(w io.Writer, cfg config.MonitoringLogging, verbose bool) *slog.Logger {
	level := cfg.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
