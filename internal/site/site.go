// Package site models the documentation-site configuration handed to the
// external static-site pipeline and builds it from literal inputs.
//
// A SiteConfig is built once and treated as read-only afterwards. Builders
// always return freshly allocated values so callers never share slices or maps.
package site

import (
	"maps"
	"reflect"
	"slices"
)

// SiteConfig is the complete configuration object consumed by the site pipeline.
type SiteConfig struct {
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Head        []HeadTag    `json:"head" yaml:"head"`
	Theme       ThemeOptions `json:"theme" yaml:"theme"`
	Plugins     []string     `json:"plugins" yaml:"plugins"`
}

// ThemeOptions is the presentation-layer configuration. DocsDir, EditLinkText
// and LastUpdated are passed through untouched.
type ThemeOptions struct {
	Repo         string     `json:"repo" yaml:"repo"`
	EditLinks    bool       `json:"editLinks" yaml:"editLinks"`
	DocsDir      string     `json:"docsDir" yaml:"docsDir"`
	EditLinkText string     `json:"editLinkText" yaml:"editLinkText"`
	LastUpdated  bool       `json:"lastUpdated" yaml:"lastUpdated"`
	Navbar       []NavEntry `json:"navbar" yaml:"navbar"`
}

// NavEntry is one navigation bar item. Navbar order is rendering order.
type NavEntry struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Clone returns a deep copy of cfg.
func (cfg SiteConfig) Clone() SiteConfig {
	out := cfg
	out.Head = cloneHead(cfg.Head)
	out.Theme.Navbar = slices.Clone(cfg.Theme.Navbar)
	out.Plugins = slices.Clone(cfg.Plugins)
	return out
}

// Equal reports whether a and b are structurally equal. Nil and empty
// collections compare equal; head attribute order is irrelevant.
func Equal(a, b SiteConfig) bool {
	if a.Title != b.Title || a.Description != b.Description {
		return false
	}
	if !slices.EqualFunc(a.Head, b.Head, HeadTag.Equal) {
		return false
	}
	if !slices.Equal(a.Plugins, b.Plugins) {
		return false
	}
	at, bt := a.Theme, b.Theme
	if at.Repo != bt.Repo || at.EditLinks != bt.EditLinks || at.DocsDir != bt.DocsDir ||
		at.EditLinkText != bt.EditLinkText || at.LastUpdated != bt.LastUpdated {
		return false
	}
	return slices.Equal(at.Navbar, bt.Navbar)
}

// Labels returns the navbar texts in rendering order.
func (t ThemeOptions) Labels() []string {
	out := make([]string, 0, len(t.Navbar))
	for _, e := range t.Navbar {
		out = append(out, e.Text)
	}
	return out
}

func cloneHead(in []HeadTag) []HeadTag {
	if in == nil {
		return nil
	}
	out := make([]HeadTag, len(in))
	for i, h := range in {
		out[i] = h.Clone()
	}
	return out
}

func equalAttrs(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	return maps.EqualFunc(a, b, func(x, y any) bool { return reflect.DeepEqual(x, y) })
}
