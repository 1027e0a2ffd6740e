package config

import (
	"git.home.luguber.info/inful/docsite/internal/render"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Apply overlays the static overrides onto in. Description from package.json
// and Repo "auto" are resolved by the caller.
func (s SiteSettings) Apply(in *site.Inputs) {
	if s.Title != "" {
		in.Title = s.Title
	}
	if s.Description != "" {
		in.Description = s.Description
	}
	if s.AnalyticsID != nil {
		in.AnalyticsID = *s.AnalyticsID
	}
	if s.Repo != "" && s.Repo != RepoAuto {
		in.Theme.Repo = s.Repo
	}
	if s.EditLinks != nil {
		in.Theme.EditLinks = *s.EditLinks
	}
	if s.DocsDir != "" {
		in.Theme.DocsDir = s.DocsDir
	}
	if s.EditLinkText != "" {
		in.Theme.EditLinkText = s.EditLinkText
	}
	if s.LastUpdated != nil {
		in.Theme.LastUpdated = *s.LastUpdated
	}
	if len(s.Navbar) > 0 {
		nav := make([]site.NavEntry, 0, len(s.Navbar))
		for _, item := range s.Navbar {
			nav = append(nav, site.NavEntry{Text: item.Text, Link: item.Link})
		}
		in.Theme.Navbar = nav
	}
	if len(s.Plugins) > 0 {
		in.Plugins = append([]string(nil), s.Plugins...)
	}
	if len(s.Head) > 0 {
		head := make([]site.HeadTag, 0, len(s.Head))
		for _, h := range s.Head {
			head = append(head, site.HeadTag{Name: h.Tag, Attrs: h.Attrs, Content: h.Content}.Clone())
		}
		in.Head = head
	}
}

// OutputFormats returns the configured formats in emission order.
func (o OutputConfig) OutputFormats() ([]render.Format, error) {
	out := make([]render.Format, 0, len(o.Formats))
	for _, raw := range o.Formats {
		f, err := render.ParseFormat(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
