package config

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docsite/internal/render"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes enumerations and free-form strings before
// defaults are applied. It mutates c in place.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeSite(&c.Site, res)
	normalizeOutput(&c.Output, res)
	normalizeMonitoring(c.Monitoring, res)
	return res, nil
}

func normalizeSite(s *SiteSettings, res *NormalizationResult) {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	s.Repo = strings.TrimSpace(s.Repo)
	if strings.EqualFold(s.Repo, RepoAuto) && s.Repo != RepoAuto {
		res.Warnings = append(res.Warnings, warnChanged("site.repo", s.Repo, RepoAuto))
		s.Repo = RepoAuto
	}
	if s.AnalyticsID != nil {
		id := strings.TrimSpace(*s.AnalyticsID)
		s.AnalyticsID = &id
	}
	s.Plugins = trimStringSlice(s.Plugins)

	for i := range s.Navbar {
		item := &s.Navbar[i]
		item.Link = strings.TrimSpace(item.Link)
		item.Text = strings.TrimSpace(item.Text)
		if item.Text == "" && item.Link != "" {
			item.Text = LabelFromLink(item.Link)
			res.Warnings = append(res.Warnings, fmt.Sprintf("derived site.navbar[%d].text %q from link %s", i, item.Text, item.Link))
		}
	}
	for i := range s.Head {
		s.Head[i].Tag = strings.ToLower(strings.TrimSpace(s.Head[i].Tag))
	}
}

func normalizeOutput(o *OutputConfig, res *NormalizationResult) {
	o.Directory = strings.TrimSpace(o.Directory)
	seen := map[string]bool{}
	out := make([]string, 0, len(o.Formats))
	for _, raw := range trimStringSlice(o.Formats) {
		name := raw
		if f, err := render.ParseFormat(raw); err == nil {
			name = string(f)
		}
		if name != raw {
			res.Warnings = append(res.Warnings, warnChanged("output.formats", raw, name))
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(o.Formats) > 0 {
		o.Formats = out
	}
}

func normalizeMonitoring(m *MonitoringConfig, res *NormalizationResult) {
	if m == nil {
		return
	}
	if raw := string(m.Logging.Level); raw != "" {
		lvl := NormalizeLogLevel(raw)
		if _, known := logLevelNormalizer.Lookup(raw); !known {
			res.Warnings = append(res.Warnings, warnUnknown("monitoring.logging.level", raw, string(lvl)))
		} else if lvl != m.Logging.Level {
			res.Warnings = append(res.Warnings, warnChanged("monitoring.logging.level", raw, lvl))
		}
		m.Logging.Level = lvl
	}
	if raw := string(m.Logging.Format); raw != "" {
		f := NormalizeLogFormat(raw)
		if _, known := logFormatNormalizer.Lookup(raw); !known {
			res.Warnings = append(res.Warnings, warnUnknown("monitoring.logging.format", raw, string(f)))
		} else if f != m.Logging.Format {
			res.Warnings = append(res.Warnings, warnChanged("monitoring.logging.format", raw, f))
		}
		m.Logging.Format = f
	}
	m.Metrics.Listen = strings.TrimSpace(m.Metrics.Listen)
	m.Metrics.Path = strings.TrimSpace(m.Metrics.Path)
}

// LabelFromLink derives a navbar label from a link: "/getting-started/" -> "Getting Started".
func LabelFromLink(link string) string {
	base := path.Base(strings.TrimRight(link, "/"))
	if base == "." || base == "/" || base == "" {
		return "Home"
	}
	base = strings.TrimSuffix(base, path.Ext(base))
	words := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// trimStringSlice removes empty entries (after trimming whitespace) from a string slice.
// Does not dedupe or sort. Use this for order-sensitive configuration fields.
func trimStringSlice(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := make([]string, 0, len(in))
	for _, p := range in {
		if tp := strings.TrimSpace(p); tp != "" {
			out = append(out, tp)
		}
	}
	return out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
