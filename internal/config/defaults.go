package config

import "git.home.luguber.info/inful/docsite/internal/render"

const (
	// DefaultOutputDirectory is where the site pipeline looks for its config module.
	DefaultOutputDirectory = "docs/src/.vuepress"
	DefaultMetricsListen   = ":9109"
	DefaultMetricsPath     = "/metrics"
	DefaultRepoDir         = "."
)

// applyDefaults fills unset fields after normalization so canonical values drive defaults.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Site.Repo == RepoAuto && cfg.Site.RepoDir == "" {
		cfg.Site.RepoDir = DefaultRepoDir
	}

	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{string(render.FormatJS)}
	}

	if cfg.Monitoring == nil {
		cfg.Monitoring = &MonitoringConfig{}
	}
	m := cfg.Monitoring
	if m.Logging.Level == "" {
		m.Logging.Level = LogLevelInfo
	}
	if m.Logging.Format == "" {
		m.Logging.Format = LogFormatText
	}
	if m.Metrics.Listen == "" {
		m.Metrics.Listen = DefaultMetricsListen
	}
	if m.Metrics.Path == "" {
		m.Metrics.Path = DefaultMetricsPath
	}
}
