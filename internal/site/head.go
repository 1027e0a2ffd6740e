package site

import (
	"fmt"
	"maps"
	"strings"
)

const (
	TagMeta   = "meta"
	TagScript = "script"
)

// gtagLoaderURL is the analytics loader script location; the measurement id is appended.
const gtagLoaderURL = "https://www.googletagmanager.com/gtag/js?id="

// HeadTag is one element injected verbatim into the page <head>.
// Attribute values are strings or booleans.
type HeadTag struct {
	Name    string         `json:"tag" yaml:"tag"`
	Attrs   map[string]any `json:"attrs" yaml:"attrs"`
	Content string         `json:"content,omitempty" yaml:"content,omitempty"`
}

// Meta returns a <meta name=... content=...> tag.
func Meta(name, content string) HeadTag {
	return HeadTag{Name: TagMeta, Attrs: map[string]any{"name": name, "content": content}}
}

// Script returns a <script> tag with the given attributes and inline body.
func Script(attrs map[string]any, content string) HeadTag {
	a := maps.Clone(attrs)
	if a == nil {
		a = map[string]any{}
	}
	return HeadTag{Name: TagScript, Attrs: a, Content: content}
}

// AnalyticsTags returns the gtag loader followed by its initialization script.
// The init script calls globals the loader defines, so the order is fixed.
func AnalyticsTags(measurementID string) []HeadTag {
	return []HeadTag{
		analyticsLoader(measurementID),
		Script(nil, analyticsInit(measurementID)),
	}
}

func analyticsLoader(id string) HeadTag {
	return Script(map[string]any{"async": true, "src": gtagLoaderURL + id}, "")
}

func analyticsInit(id string) string {
	return fmt.Sprintf(`window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());

gtag('config', '%s');
`, id)
}

// AnalyticsLoaderID returns the measurement id if h loads the analytics library.
func (h HeadTag) AnalyticsLoaderID() (string, bool) {
	if h.Name != TagScript {
		return "", false
	}
	src, _ := h.Attrs["src"].(string)
	if !strings.HasPrefix(src, gtagLoaderURL) {
		return "", false
	}
	return strings.TrimPrefix(src, gtagLoaderURL), true
}

// AnalyticsInitID returns the measurement id if h is an analytics initialization script.
func (h HeadTag) AnalyticsInitID() (string, bool) {
	if h.Name != TagScript || !strings.Contains(h.Content, "gtag('config'") {
		return "", false
	}
	_, rest, _ := strings.Cut(h.Content, "gtag('config', '")
	id, _, ok := strings.Cut(rest, "'")
	return id, ok
}

// Clone returns a copy of h with its own attribute map.
func (h HeadTag) Clone() HeadTag {
	h.Attrs = maps.Clone(h.Attrs)
	return h
}

// Equal reports structural equality; attribute order is irrelevant.
func (h HeadTag) Equal(o HeadTag) bool {
	return h.Name == o.Name && h.Content == o.Content && equalAttrs(h.Attrs, o.Attrs)
}
