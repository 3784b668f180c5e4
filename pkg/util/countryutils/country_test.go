package countryutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISO2(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "uppercase code passthrough", input: "FR", expected: "FR"},
		{name: "lowercase code uppercased", input: "fr", expected: "FR"},
		{name: "mixed case code", input: "iT", expected: "IT"},
		{name: "french name", input: "France", expected: "FR"},
		{name: "accented name", input: "Algérie", expected: "DZ"},
		{name: "unaccented variant", input: "algerie", expected: "DZ"},
		{name: "accented etats-unis", input: "États-Unis", expected: "US"},
		{name: "usa shorthand", input: "USA", expected: "US"},
		{name: "england maps to GB", input: "Angleterre", expected: "GB"},
		{name: "unknown name passthrough", input: "Wakanda", expected: "Wakanda"},
		{name: "unknown name trimmed", input: "  Wakanda  ", expected: "Wakanda"},
		{name: "code with surrounding spaces", input: " ma ", expected: "MA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeISO2(tt.input))
		})
	}
}

func TestNormalizeISO2Idempotent(t *testing.T) {
	// Normalizing an already-normalized value must not change it.
	for _, input := range []string{"France", "Algérie", "usa", "Wakanda", ""} {
		once := NormalizeISO2(input)
		assert.Equal(t, once, NormalizeISO2(once), "input %q", input)
	}
}
