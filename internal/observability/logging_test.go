package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

func TestWithRunIDAndStage(t *testing.T) {
	ctx := WithStage(WithRunID(context.Background(), "run-1"), "encode")
	lc := GetContext(ctx)
	assert.Equal(t, "run-1", lc.RunID)
	assert.Equal(t, "encode", lc.Stage)

	// Overriding a field keeps the other.
	lc = GetContext(WithStage(ctx, "write"))
	assert.Equal(t, "run-1", lc.RunID)
	assert.Equal(t, "write", lc.Stage)
}

func TestGetContext_Empty(t *testing.T) {
	assert.Equal(t, LogContext{}, GetContext(context.Background()))
}

func TestInfoContext_IncludesContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithRunID(context.Background(), "abc")
	InfoContext(ctx, "wrote", logfields.Format("js"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "wrote", rec["msg"])
	assert.Equal(t, "abc", rec[logfields.KeyRunID])
	assert.Equal(t, "js", rec[logfields.KeyFormat])
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.MonitoringLogging{Level: config.LogLevelWarn, Format: config.LogFormatJSON}, false)
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	logger = NewLogger(&buf, config.MonitoringLogging{Level: config.LogLevelError, Format: config.LogFormatText}, true)
	logger.Debug("debugging")
	assert.Contains(t, buf.String(), "msg=debugging")
}
