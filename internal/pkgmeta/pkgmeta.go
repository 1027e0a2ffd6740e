// Package pkgmeta reads the docs project's package.json, the source of the
// site description.
package pkgmeta

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

// Manifest holds the package.json fields the site configuration uses.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Read parses the manifest at path.
func Read(path string) (Manifest, error) {
	// #nosec G304 -- path comes from the operator's settings file
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, derrors.ManifestError(path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, derrors.ManifestError(path, err)
	}
	return m, nil
}

// Summary returns the manifest description flattened to a single line of plain text.
func (m Manifest) Summary() string {
	return PlainText(m.Description)
}

// PlainText strips Markdown markup from s, keeping only the visible text.
// Blocks are joined with single spaces.
func PlainText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	src := []byte(s)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var b strings.Builder
	space := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			if n.Type() == gmast.TypeBlock {
				space()
			}
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				space()
			}
		case *gmast.String:
			b.Write(node.Value)
		case *gmast.AutoLink:
			b.Write(node.URL(src))
		}
		return gmast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
