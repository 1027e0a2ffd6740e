// Package render encodes a site configuration into the files the external
// site pipeline reads, and writes them atomically.
package render

import (
	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
)

// Format is an output encoding for the site configuration.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatJS is an ES module whose default export is the configuration object.
	FormatJS Format = "js"
)

// AllFormats lists every supported format in emission order.
var AllFormats = []Format{FormatJSON, FormatYAML, FormatJS}

var formatNormalizer = normalization.NewNormalizer(map[string]Format{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
	"js":   FormatJS,
	"mjs":  FormatJS,
}, FormatJSON)

// ParseFormat parses a format name (case-insensitive; yml and mjs are accepted aliases).
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.NormalizeWithError(raw)
}

// FormatNames returns the accepted format names.
func FormatNames() []string {
	return formatNormalizer.ValidKeys()
}

// FileName returns the output file name for f.
func (f Format) FileName() string {
	return "config." + string(f)
}

func (f Format) String() string { return string(f) }
