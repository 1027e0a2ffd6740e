package site

import (
	"fmt"
	"maps"
)

// ToTree converts cfg into a generic key/value tree using the site pipeline's
// key names. Head tags become [tag, attrs] or [tag, attrs, content] lists.
func ToTree(cfg SiteConfig) map[string]any {
	head := make([]any, 0, len(cfg.Head))
	for _, h := range cfg.Head {
		attrs := maps.Clone(h.Attrs)
		if attrs == nil {
			attrs = map[string]any{}
		}
		entry := []any{h.Name, attrs}
		if h.Content != "" {
			entry = append(entry, h.Content)
		}
		head = append(head, entry)
	}

	navbar := make([]any, 0, len(cfg.Theme.Navbar))
	for _, e := range cfg.Theme.Navbar {
		navbar = append(navbar, map[string]any{"text": e.Text, "link": e.Link})
	}

	plugins := make([]any, 0, len(cfg.Plugins))
	for _, p := range cfg.Plugins {
		plugins = append(plugins, p)
	}

	return map[string]any{
		"title":       cfg.Title,
		"description": cfg.Description,
		"head":        head,
		"theme": map[string]any{
			"repo":         cfg.Theme.Repo,
			"editLinks":    cfg.Theme.EditLinks,
			"docsDir":      cfg.Theme.DocsDir,
			"editLinkText": cfg.Theme.EditLinkText,
			"lastUpdated":  cfg.Theme.LastUpdated,
			"navbar":       navbar,
		},
		"plugins": plugins,
	}
}

// FromTree reverses ToTree. It accepts trees decoded from JSON or YAML.
func FromTree(tree map[string]any) (SiteConfig, error) {
	var (
		cfg SiteConfig
		err error
	)
	if cfg.Title, err = stringField(tree, "title"); err != nil {
		return SiteConfig{}, err
	}
	if cfg.Description, err = stringField(tree, "description"); err != nil {
		return SiteConfig{}, err
	}
	if cfg.Head, err = headFromTree(tree["head"]); err != nil {
		return SiteConfig{}, err
	}
	if cfg.Theme, err = themeFromTree(tree["theme"]); err != nil {
		return SiteConfig{}, err
	}
	plugins, err := listField(tree["plugins"], "plugins")
	if err != nil {
		return SiteConfig{}, err
	}
	for i, p := range plugins {
		s, ok := p.(string)
		if !ok {
			return SiteConfig{}, fmt.Errorf("plugins[%d]: expected string, got %T", i, p)
		}
		cfg.Plugins = append(cfg.Plugins, s)
	}
	return cfg, nil
}

func headFromTree(v any) ([]HeadTag, error) {
	entries, err := listField(v, "head")
	if err != nil {
		return nil, err
	}
	head := make([]HeadTag, 0, len(entries))
	for i, raw := range entries {
		parts, ok := raw.([]any)
		if !ok || len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("head[%d]: expected [tag, attrs, content?]", i)
		}
		name, ok := parts[0].(string)
		if !ok {
			return nil, fmt.Errorf("head[%d]: tag must be a string", i)
		}
		attrs, err := mapField(parts[1], fmt.Sprintf("head[%d].attrs", i))
		if err != nil {
			return nil, err
		}
		tag := HeadTag{Name: name, Attrs: maps.Clone(attrs)}
		if tag.Attrs == nil {
			tag.Attrs = map[string]any{}
		}
		if len(parts) == 3 {
			if tag.Content, ok = parts[2].(string); !ok {
				return nil, fmt.Errorf("head[%d]: content must be a string", i)
			}
		}
		head = append(head, tag)
	}
	return head, nil
}

func themeFromTree(v any) (ThemeOptions, error) {
	m, err := mapField(v, "theme")
	if err != nil {
		return ThemeOptions{}, err
	}
	var t ThemeOptions
	if t.Repo, err = stringField(m, "repo"); err != nil {
		return ThemeOptions{}, err
	}
	if t.DocsDir, err = stringField(m, "docsDir"); err != nil {
		return ThemeOptions{}, err
	}
	if t.EditLinkText, err = stringField(m, "editLinkText"); err != nil {
		return ThemeOptions{}, err
	}
	if t.EditLinks, err = boolField(m, "editLinks"); err != nil {
		return ThemeOptions{}, err
	}
	if t.LastUpdated, err = boolField(m, "lastUpdated"); err != nil {
		return ThemeOptions{}, err
	}
	entries, err := listField(m["navbar"], "theme.navbar")
	if err != nil {
		return ThemeOptions{}, err
	}
	for i, raw := range entries {
		em, err := mapField(raw, fmt.Sprintf("theme.navbar[%d]", i))
		if err != nil {
			return ThemeOptions{}, err
		}
		var e NavEntry
		if e.Text, err = stringField(em, "text"); err != nil {
			return ThemeOptions{}, err
		}
		if e.Link, err = stringField(em, "link"); err != nil {
			return ThemeOptions{}, err
		}
		t.Navbar = append(t.Navbar, e)
	}
	return t, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %T", key, v)
	}
	return s, nil
}

func boolField(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected bool, got %T", key, v)
	}
	return b, nil
}

func listField(v any, name string) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected list, got %T", name, v)
	}
	return l, nil
}

func mapField(v any, name string) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected mapping, got %T", name, v)
	}
	return m, nil
}
