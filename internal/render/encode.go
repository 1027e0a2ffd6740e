package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// The JS module mirrors the pipeline's own config file: the theme options are
// passed through the default theme factory, which VuePress requires.
const (
	jsThemeImport   = "import { defaultTheme } from '@vuepress/theme-default'\n\n"
	jsModulePrefix  = "export default "
	jsThemeCall     = "defaultTheme("
	jsThemeSentinel = "\x00defaultTheme"
)

// Encode serializes cfg in format f.
func Encode(cfg site.SiteConfig, f Format) ([]byte, error) {
	tree := site.ToTree(cfg)
	switch f {
	case FormatJSON:
		return encodeJSON(tree)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return nil, derrors.RenderFailed(string(f), err)
		}
		if err := enc.Close(); err != nil {
			return nil, derrors.RenderFailed(string(f), err)
		}
		return buf.Bytes(), nil
	case FormatJS:
		return encodeJS(tree)
	default:
		return nil, derrors.RenderFailed(string(f), fmt.Errorf("unsupported format"))
	}
}

// Decode parses data previously produced by Encode.
func Decode(data []byte, f Format) (site.SiteConfig, error) {
	var tree map[string]any
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return site.SiteConfig{}, derrors.RenderFailed(string(f), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return site.SiteConfig{}, derrors.RenderFailed(string(f), err)
		}
	case FormatJS:
		body, err := unwrapJS(data)
		if err != nil {
			return site.SiteConfig{}, derrors.RenderFailed(string(f), err)
		}
		if err := json.Unmarshal(body, &tree); err != nil {
			return site.SiteConfig{}, derrors.RenderFailed(string(f), err)
		}
	default:
		return site.SiteConfig{}, derrors.RenderFailed(string(f), fmt.Errorf("unsupported format"))
	}
	cfg, err := site.FromTree(tree)
	if err != nil {
		return site.SiteConfig{}, derrors.RenderFailed(string(f), err)
	}
	return cfg, nil
}

// Fingerprint identifies encoded content. Identical bytes in the same format
// always produce the same fingerprint.
func Fingerprint(f Format, data []byte) string {
	return mdfp.CalculateFingerprintFromParts("format: "+string(f), string(data))
}

func encodeJSON(tree map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return nil, derrors.RenderFailed(string(FormatJSON), err)
	}
	return buf.Bytes(), nil
}

// encodeJS renders tree as an ES module whose theme entry is
// defaultTheme(<options>). The theme is marshaled on its own at one level of
// nesting and spliced in where a sentinel string stood.
func encodeJS(tree map[string]any) ([]byte, error) {
	theme := tree["theme"]
	outer := make(map[string]any, len(tree))
	for k, v := range tree {
		outer[k] = v
	}
	outer["theme"] = jsThemeSentinel

	body, err := encodeJSON(outer)
	if err != nil {
		return nil, err
	}
	var themeBuf bytes.Buffer
	enc := json.NewEncoder(&themeBuf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("  ", "  ")
	if err := enc.Encode(theme); err != nil {
		return nil, derrors.RenderFailed(string(FormatJS), err)
	}
	themeJSON := bytes.TrimRight(themeBuf.Bytes(), "\n")
	sentinel, err := json.Marshal(jsThemeSentinel)
	if err != nil {
		return nil, derrors.RenderFailed(string(FormatJS), err)
	}
	call := append([]byte(jsThemeCall), themeJSON...)
	call = append(call, ')')
	body = bytes.Replace(bytes.TrimRight(body, "\n"), sentinel, call, 1)

	out := make([]byte, 0, len(jsThemeImport)+len(jsModulePrefix)+len(body)+2)
	out = append(out, jsThemeImport...)
	out = append(out, jsModulePrefix...)
	out = append(out, body...)
	return append(out, ";\n"...), nil
}

// unwrapJS reverses encodeJS, returning the configuration as plain JSON.
func unwrapJS(data []byte) ([]byte, error) {
	s := strings.TrimSpace(string(data))
	s = strings.TrimSpace(strings.TrimPrefix(s, strings.TrimSpace(jsThemeImport)))
	if !strings.HasPrefix(s, jsModulePrefix) {
		return nil, fmt.Errorf("missing %q", jsModulePrefix)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, jsModulePrefix), ";")

	// A quote inside a JSON string is escaped, so this key can only match the
	// top-level theme entry.
	marker := `"theme": ` + jsThemeCall
	i := strings.Index(s, marker)
	if i < 0 {
		return []byte(s), nil
	}
	i += len(`"theme": `)
	rest := s[i+len(jsThemeCall):]
	dec := json.NewDecoder(strings.NewReader(rest))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("theme options: %w", err)
	}
	after := strings.TrimSpace(rest[dec.InputOffset():])
	if !strings.HasPrefix(after, ")") {
		return nil, fmt.Errorf("unterminated %s call", strings.TrimSuffix(jsThemeCall, "("))
	}
	return []byte(s[:i] + string(raw) + after[1:]), nil
}
