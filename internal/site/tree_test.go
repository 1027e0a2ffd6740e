package site

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTree_RoundTrip(t *testing.T) {
	cfg := Default()

	back, err := FromTree(ToTree(cfg))
	require.NoError(t, err)
	assert.True(t, Equal(cfg, back))
	assert.Equal(t, ToTree(cfg), ToTree(back))
}

func TestTree_Shape(t *testing.T) {
	tree := ToTree(Default())

	head := tree["head"].([]any)
	first := head[0].([]any)
	assert.Len(t, first, 2)
	assert.Equal(t, "meta", first[0])
	assert.Equal(t, map[string]any{"name": "theme-color", "content": "#3eaf7c"}, first[1])

	initTag := head[4].([]any)
	require.Len(t, initTag, 3)
	assert.Equal(t, map[string]any{}, initTag[1])

	theme := tree["theme"].(map[string]any)
	assert.Equal(t, false, theme["editLinks"])
	assert.Equal(t, map[string]any{"text": "Pitch", "link": "/pitch/"}, theme["navbar"].([]any)[0])
}

func TestTree_RoundTripThroughJSONAndYAML(t *testing.T) {
	cfg := Default()

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(ToTree(cfg))
		require.NoError(t, err)
		var tree map[string]any
		require.NoError(t, json.Unmarshal(data, &tree))
		back, err := FromTree(tree)
		require.NoError(t, err)
		assert.True(t, Equal(cfg, back))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(ToTree(cfg))
		require.NoError(t, err)
		var tree map[string]any
		require.NoError(t, yaml.Unmarshal(data, &tree))
		back, err := FromTree(tree)
		require.NoError(t, err)
		assert.True(t, Equal(cfg, back))
	})
}

func TestFromTree_Errors(t *testing.T) {
	tests := []struct {
		name string
		tree map[string]any
	}{
		{"title not string", map[string]any{"title": 1}},
		{"head not list", map[string]any{"head": "x"}},
		{"head entry too short", map[string]any{"head": []any{[]any{"meta"}}}},
		{"head tag not string", map[string]any{"head": []any{[]any{1, map[string]any{}}}}},
		{"head content not string", map[string]any{"head": []any{[]any{"script", map[string]any{}, 4}}}},
		{"theme not mapping", map[string]any{"theme": []any{}}},
		{"editLinks not bool", map[string]any{"theme": map[string]any{"editLinks": "no"}}},
		{"navbar entry not mapping", map[string]any{"theme": map[string]any{"navbar": []any{"Pitch"}}}},
		{"plugin not string", map[string]any{"plugins": []any{true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromTree(tt.tree)
			assert.Error(t, err)
		})
	}
}
