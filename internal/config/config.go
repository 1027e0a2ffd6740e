package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// CurrentVersion is the settings file format version written by Init.
const CurrentVersion = "1.0"

// RepoAuto asks for the repository link to be read from the git origin remote.
const RepoAuto = "auto"

// Config represents the docsite settings file.
type Config struct {
	Version    string            `yaml:"version"`
	Site       SiteSettings      `yaml:"site"`
	Output     OutputConfig      `yaml:"output"`
	Monitoring *MonitoringConfig `yaml:"monitoring,omitempty"`
}

// SiteSettings overrides the built-in site inputs. Empty fields keep the built-in value.
type SiteSettings struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	// PackageJSON names the manifest whose description is used when Description is empty.
	PackageJSON string `yaml:"package_json,omitempty"`
	// AnalyticsID overrides the analytics measurement id; an explicit empty string disables analytics.
	AnalyticsID *string `yaml:"analytics_id,omitempty"`
	// Repo is the repository link, or "auto" to read the origin remote of RepoDir.
	Repo         string         `yaml:"repo,omitempty"`
	RepoDir      string         `yaml:"repo_dir,omitempty"`
	EditLinks    *bool          `yaml:"edit_links,omitempty"`
	DocsDir      string         `yaml:"docs_dir,omitempty"`
	EditLinkText string         `yaml:"edit_link_text,omitempty"`
	LastUpdated  *bool          `yaml:"last_updated,omitempty"`
	Navbar       []NavItem      `yaml:"navbar,omitempty"`
	Plugins      []string       `yaml:"plugins,omitempty"`
	Head         []HeadTagEntry `yaml:"head,omitempty"`
}

// NavItem is a navbar entry. An empty Text is derived from Link.
type NavItem struct {
	Text string `yaml:"text,omitempty"`
	Link string `yaml:"link"`
}

// HeadTagEntry declares a head tag. Attribute values must be strings or booleans.
type HeadTagEntry struct {
	Tag     string         `yaml:"tag"`
	Attrs   map[string]any `yaml:"attrs,omitempty"`
	Content string         `yaml:"content,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string   `yaml:"directory"`
	Formats   []string `yaml:"formats,omitempty"`
	Clean     bool     `yaml:"clean"` // Remove previously emitted config files before writing
}

// MonitoringConfig represents logging and metrics configuration.
type MonitoringConfig struct {
	Logging MonitoringLogging `yaml:"logging"`
	Metrics MonitoringMetrics `yaml:"metrics"`
}

// MonitoringLogging represents logging configuration.
type MonitoringLogging struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MonitoringMetrics represents the Prometheus endpoint served by watch mode.
type MonitoringMetrics struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
	Path    string `yaml:"path"`
}

// Load reads, normalizes, defaults and validates a settings file.
func Load(configPath string) (*Config, error) {
	// .env files are optional
	_ = loadEnvFile()

	// #nosec G304 -- the settings path is supplied by the operator
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, derrors.ConfigNotFound(configPath)
	}
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("failed to read config file: %w", err))
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	if !strings.HasPrefix(cfg.Version, "1") {
		return nil, derrors.ConfigInvalid(configPath,
			fmt.Errorf("unsupported configuration version: %q (expected %s)", cfg.Version, CurrentVersion))
	}

	res, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("normalize: %w", err))
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "config normalization: %s\n", w)
	}

	applyDefaults(&cfg)
	resolvePaths(&cfg, filepath.Dir(configPath))

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePaths makes the project paths named in the settings file relative to
// the directory holding it.
func resolvePaths(cfg *Config, baseDir string) {
	for _, p := range []*string{&cfg.Site.PackageJSON, &cfg.Site.RepoDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
}

// Default returns the configuration used when no settings file exists: the
// built-in site, emitted as a JS module into the default output directory.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	applyDefaults(cfg)
	return cfg
}

// Init writes an example settings file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.New(derrors.CategoryConfig, derrors.SeverityError,
			"configuration file already exists (use --force to overwrite)").WithContext("path", configPath)
	}

	analytics := site.DefaultAnalyticsID
	example := Config{
		Version: CurrentVersion,
		Site: SiteSettings{
			Title:       "PreQL/Trilogy",
			PackageJSON: "package.json",
			AnalyticsID: &analytics,
			Repo:        "https://github.com/preqldata",
			Navbar: []NavItem{
				{Text: "Pitch", Link: "/pitch/"},
				{Text: "Concepts", Link: "/concepts/"},
				{Link: "/installation/"},
				{Text: "Demo", Link: "/demo"},
			},
		},
		Output: OutputConfig{
			Directory: DefaultOutputDirectory,
			Formats:   []string{"js", "json"},
		},
		Monitoring: &MonitoringConfig{
			Logging: MonitoringLogging{Level: LogLevelInfo, Format: LogFormatText},
			Metrics: MonitoringMetrics{Enabled: false, Listen: DefaultMetricsListen, Path: DefaultMetricsPath},
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return derrors.InternalError("failed to marshal example config", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return derrors.WriteFailed(configPath, err)
	}
	return nil
}
