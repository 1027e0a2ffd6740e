package normalization

import (
	"testing"
)

type testFormat string

const (
	formatJSON testFormat = "json"
	formatYAML testFormat = "yaml"
	formatJS   testFormat = "js"
)

func newFormats() *Normalizer[testFormat] {
	return NewNormalizer(map[string]testFormat{
		"json": formatJSON,
		"yaml": formatYAML,
		"yml":  formatYAML,
		"js":   formatJS,
	}, formatJSON)
}

func TestNormalizer_Basic(t *testing.T) {
	n := newFormats()

	tests := []struct {
		name     string
		input    string
		expected testFormat
	}{
		{"exact match", "yaml", formatYAML},
		{"alias", "yml", formatYAML},
		{"case insensitive", "JS", formatJS},
		{"with spaces", "  yaml  ", formatYAML},
		{"invalid input", "toml", formatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	n := newFormats()

	got, err := n.NormalizeWithError(" YML ")
	if err != nil {
		t.Fatalf("NormalizeWithError(valid input) returned error: %v", err)
	}
	if got != formatYAML {
		t.Errorf("NormalizeWithError(valid input) = %v, want %v", got, formatYAML)
	}

	if _, err := n.NormalizeWithError("toml"); err == nil {
		t.Error("NormalizeWithError(invalid input) should return error")
	}
}

func TestNormalizer_Lookup(t *testing.T) {
	n := newFormats()
	if _, ok := n.Lookup("toml"); ok {
		t.Error("Lookup(toml) should not be recognized")
	}
	if v, ok := n.Lookup("Json"); !ok || v != formatJSON {
		t.Errorf("Lookup(Json) = %v, %v", v, ok)
	}
}

func TestValidKeys(t *testing.T) {
	keys := newFormats().ValidKeys()
	expected := []string{"js", "json", "yaml", "yml"}
	if len(keys) != len(expected) {
		t.Fatalf("ValidKeys() length = %d, want %d", len(keys), len(expected))
	}
	for i, key := range keys {
		if key != expected[i] {
			t.Errorf("ValidKeys()[%d] = %q, want %q", i, key, expected[i])
		}
	}
}
