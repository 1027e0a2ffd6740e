package site

import (
	"fmt"
	"strings"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

// Validate checks the shape the site pipeline relies on. The first violation
// is returned as a validation error naming the offending field.
func Validate(cfg SiteConfig) error {
	checks := []func(SiteConfig) error{
		validateScalars,
		validateHead,
		validateNavbar,
		validatePlugins,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateScalars(cfg SiteConfig) error {
	if strings.TrimSpace(cfg.Title) == "" {
		return derrors.ValidationFailed("title", "must not be empty")
	}
	if strings.TrimSpace(cfg.Description) == "" {
		return derrors.ValidationFailed("description", "must not be empty")
	}
	return nil
}

func validateHead(cfg SiteConfig) error {
	if len(cfg.Head) == 0 {
		return derrors.ValidationFailed("head", "must not be empty")
	}
	loaded := map[string]bool{}
	for i, h := range cfg.Head {
		field := fmt.Sprintf("head[%d]", i)
		if strings.TrimSpace(h.Name) == "" {
			return derrors.ValidationFailed(field, "tag name must not be empty")
		}
		for k, v := range h.Attrs {
			switch v.(type) {
			case string, bool:
			default:
				return derrors.ValidationFailed(field+"."+k, fmt.Sprintf("attribute value must be string or bool, got %T", v))
			}
		}
		if id, ok := h.AnalyticsLoaderID(); ok {
			loaded[id] = true
		}
		if id, ok := h.AnalyticsInitID(); ok && !loaded[id] {
			return derrors.ValidationFailed(field, "analytics init script must follow its loader script")
		}
	}
	return nil
}

func validateNavbar(cfg SiteConfig) error {
	if len(cfg.Theme.Navbar) == 0 {
		return derrors.ValidationFailed("theme.navbar", "must not be empty")
	}
	for i, e := range cfg.Theme.Navbar {
		if strings.TrimSpace(e.Text) == "" {
			return derrors.ValidationFailed(fmt.Sprintf("theme.navbar[%d].text", i), "must not be empty")
		}
		if !strings.HasPrefix(e.Link, "/") {
			return derrors.ValidationFailed(fmt.Sprintf("theme.navbar[%d].link", i), "must start with /")
		}
	}
	return nil
}

func validatePlugins(cfg SiteConfig) error {
	if len(cfg.Plugins) == 0 {
		return derrors.ValidationFailed("plugins", "must not be empty")
	}
	seen := make(map[string]struct{}, len(cfg.Plugins))
	for i, p := range cfg.Plugins {
		if strings.TrimSpace(p) == "" {
			return derrors.ValidationFailed(fmt.Sprintf("plugins[%d]", i), "must not be empty")
		}
		if _, dup := seen[p]; dup {
			return derrors.ValidationFailed(fmt.Sprintf("plugins[%d]", i), "duplicate plugin "+p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
