package config

import (
	"fmt"
	"net/url"
	"strings"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/render"
)

// ValidateConfig validates a normalized, defaulted configuration.
func ValidateConfig(cfg *Config) error {
	validators := []func(*Config) error{
		validateSite,
		validateHead,
		validateOutput,
		validateMonitoring,
	}
	for _, v := range validators {
		if err := v(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateSite(cfg *Config) error {
	s := cfg.Site
	if s.Repo != "" && s.Repo != RepoAuto {
		u, err := url.Parse(s.Repo)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return derrors.ValidationFailed("site.repo", "must be an http(s) URL or \"auto\"")
		}
	}
	for i, item := range s.Navbar {
		if !strings.HasPrefix(item.Link, "/") {
			return derrors.ValidationFailed(fmt.Sprintf("site.navbar[%d].link", i), "must start with /")
		}
	}
	seen := map[string]bool{}
	for i, p := range s.Plugins {
		if seen[p] {
			return derrors.ValidationFailed(fmt.Sprintf("site.plugins[%d]", i), "duplicate plugin "+p)
		}
		seen[p] = true
	}
	return nil
}

func validateHead(cfg *Config) error {
	for i, h := range cfg.Site.Head {
		field := fmt.Sprintf("site.head[%d]", i)
		if h.Tag == "" {
			return derrors.ValidationFailed(field+".tag", "must not be empty")
		}
		for k, v := range h.Attrs {
			switch v.(type) {
			case string, bool:
			default:
				return derrors.ValidationFailed(field+".attrs."+k, fmt.Sprintf("must be a string or bool, got %T", v))
			}
		}
	}
	return nil
}

func validateOutput(cfg *Config) error {
	if cfg.Output.Directory == "" {
		return derrors.ValidationFailed("output.directory", "must not be empty")
	}
	for i, f := range cfg.Output.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return derrors.ValidationFailed(fmt.Sprintf("output.formats[%d]", i), err.Error())
		}
	}
	return nil
}

func validateMonitoring(cfg *Config) error {
	m := cfg.Monitoring
	if m == nil || !m.Metrics.Enabled {
		return nil
	}
	if m.Metrics.Listen == "" {
		return derrors.ValidationFailed("monitoring.metrics.listen", "required when metrics are enabled")
	}
	if !strings.HasPrefix(m.Metrics.Path, "/") {
		return derrors.ValidationFailed("monitoring.metrics.path", "must start with /")
	}
	return nil
}
