package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/render"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// runCLI parses args and runs the selected command, returning its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("docsite"),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Global{Out: &out}, &cli)
	return out.String(), err
}

func writeSettings(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestShow_DefaultsWithoutSettingsFile(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "--config", filepath.Join(dir, "missing.yaml"), "show")
	require.NoError(t, err)

	cfg, err := render.Decode([]byte(out), render.FormatJSON)
	require.NoError(t, err)
	assert.True(t, site.Equal(site.Default(), cfg))

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "PreQL/Trilogy", tree["title"])
}

func TestShow_YAML(t *testing.T) {
	out, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "show", "--format", "yml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: PreQL/Trilogy")
}

func TestShow_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "show", "--format", "toml")
	assert.Error(t, err)
}

func TestGenerate_WritesConfiguredFormats(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	cfgPath := writeSettings(t, dir, "version: \"1.0\"\nsite:\n  title: Custom\noutput:\n  directory: "+outDir+"\n  formats: [json, js]\n")

	out, err := runCLI(t, "--config", cfgPath, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")
	assert.Contains(t, out, filepath.Join(outDir, "config.json"))

	data, err := os.ReadFile(filepath.Join(outDir, "config.json"))
	require.NoError(t, err)
	cfg, err := render.Decode(data, render.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.Title)

	out, err = runCLI(t, "--config", cfgPath, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestGenerate_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "override")
	_, err := runCLI(t, "--config", filepath.Join(dir, "missing.yaml"), "generate", "-o", outDir, "-f", "yaml")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "config.yaml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "config.js"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSettings(t, dir, "version: \"1.0\"\n")
	out, err := runCLI(t, "--config", cfgPath, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Pitch, Concepts, Installation, Demo")
}

func TestValidate_Invalid(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSettings(t, dir, "version: \"1.0\"\nsite:\n  navbar: [{text: Pitch, link: pitch}]\n")
	_, err := runCLI(t, "--config", cfgPath, "validate")
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
	assert.Equal(t, 2, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "init", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "initialized successfully")

	// The example settings read the description from package.json next to them.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name":"docs","description":"Docs for *Trilogy*"}`), 0o600))
	cfgPath := filepath.Join(dir, DefaultConfigPath)
	out, err = runCLI(t, "--config", cfgPath, "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"description": "Docs for Trilogy"`)

	_, err = runCLI(t, "init", "--output", dir)
	require.Error(t, err)
	assert.Equal(t, 7, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	_, err = runCLI(t, "init", "--output", dir, "--force")
	assert.NoError(t, err)
}
