package site

import "slices"

// Literal values of the Trilogy documentation site.
const (
	DefaultTitle       = "PreQL/Trilogy"
	DefaultDescription = "Documentation for PreQL/Trilogy, a declarative, typed SQL-like language for analytics."
	DefaultAnalyticsID = "G-KK1Z9YZMR9"
	DefaultRepo        = "https://github.com/preqldata"
)

// Plugin identifiers understood by the site pipeline.
const (
	PluginBackToTop  = "@vuepress/plugin-back-to-top"
	PluginMediumZoom = "@vuepress/plugin-medium-zoom"
)

// Inputs are the declarative values a SiteConfig is assembled from.
type Inputs struct {
	Title       string
	Description string
	// Head tags are emitted in order, before any analytics tags.
	Head []HeadTag
	// AnalyticsID, when set, appends the analytics loader and init tags.
	AnalyticsID string
	Theme       ThemeOptions
	Plugins     []string
}

// DefaultInputs returns the literal inputs of the Trilogy documentation site.
func DefaultInputs() Inputs {
	return Inputs{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Head: []HeadTag{
			Meta("theme-color", "#3eaf7c"),
			Meta("apple-mobile-web-app-capable", "yes"),
			Meta("apple-mobile-web-app-status-bar-style", "black"),
		},
		AnalyticsID: DefaultAnalyticsID,
		Theme: ThemeOptions{
			Repo:         DefaultRepo,
			EditLinks:    false,
			DocsDir:      "",
			EditLinkText: "",
			LastUpdated:  false,
			Navbar: []NavEntry{
				{Text: "Pitch", Link: "/pitch/"},
				{Text: "Concepts", Link: "/concepts/"},
				{Text: "Installation", Link: "/installation/"},
				{Text: "Demo", Link: "/demo"},
			},
		},
		Plugins: []string{PluginBackToTop, PluginMediumZoom},
	}
}

// Build assembles a SiteConfig from in. It performs no I/O and never aliases
// the slices or maps held by in.
func Build(in Inputs) SiteConfig {
	head := make([]HeadTag, 0, len(in.Head)+2)
	for _, h := range in.Head {
		head = append(head, h.Clone())
	}
	if in.AnalyticsID != "" {
		head = append(head, AnalyticsTags(in.AnalyticsID)...)
	}

	theme := in.Theme
	theme.Navbar = slices.Clone(in.Theme.Navbar)

	return SiteConfig{
		Title:       in.Title,
		Description: in.Description,
		Head:        head,
		Theme:       theme,
		Plugins:     slices.Clone(in.Plugins),
	}
}

// Default builds the Trilogy documentation site configuration. Every call
// returns a new, structurally identical value.
func Default() SiteConfig {
	return Build(DefaultInputs())
}
