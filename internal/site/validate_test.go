package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SiteConfig)
		field  string
	}{
		{"empty title", func(c *SiteConfig) { c.Title = " " }, "title"},
		{"empty description", func(c *SiteConfig) { c.Description = "" }, "description"},
		{"no head", func(c *SiteConfig) { c.Head = nil }, "head"},
		{"unnamed tag", func(c *SiteConfig) { c.Head[0].Name = "" }, "head[0]"},
		{"bad attr type", func(c *SiteConfig) { c.Head[1].Attrs["content"] = 3 }, "head[1].content"},
		{"init before loader", func(c *SiteConfig) { c.Head[3], c.Head[4] = c.Head[4], c.Head[3] }, "head[3]"},
		{"empty navbar", func(c *SiteConfig) { c.Theme.Navbar = nil }, "theme.navbar"},
		{"empty nav text", func(c *SiteConfig) { c.Theme.Navbar[2].Text = "" }, "theme.navbar[2].text"},
		{"relative link", func(c *SiteConfig) { c.Theme.Navbar[1].Link = "concepts/" }, "theme.navbar[1].link"},
		{"empty link", func(c *SiteConfig) { c.Theme.Navbar[0].Link = "" }, "theme.navbar[0].link"},
		{"no plugins", func(c *SiteConfig) { c.Plugins = nil }, "plugins"},
		{"blank plugin", func(c *SiteConfig) { c.Plugins[1] = "" }, "plugins[1]"},
		{"duplicate plugin", func(c *SiteConfig) { c.Plugins = append(c.Plugins, PluginBackToTop) }, "plugins[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			se, ok := derrors.As(err)
			require.True(t, ok)
			assert.Equal(t, derrors.CategoryValidation, se.Category)
			assert.Equal(t, tt.field, se.Context["field"])
		})
	}
}

func TestValidate_LoaderForDifferentIDDoesNotSatisfyInit(t *testing.T) {
	in := DefaultInputs()
	in.AnalyticsID = ""
	cfg := Build(in)
	cfg.Head = append(cfg.Head, AnalyticsTags("G-ONE")[0], AnalyticsTags("G-TWO")[1])

	require.Error(t, Validate(cfg))
}

func TestValidate_AnalyticsOptional(t *testing.T) {
	in := DefaultInputs()
	in.AnalyticsID = ""
	require.NoError(t, Validate(Build(in)))
}
