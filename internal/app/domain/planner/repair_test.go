package planner

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamgen/roamgen/internal/app/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRepairTier1(t *testing.T) {
	// Well-formed candidates must parse without any textual rewriting.
	doc, err := Repair(`{"note": "He said \"hi\"", "days": [1, 2]}`, discardLogger())
	assert.NoError(t, err)
	assert.Equal(t, `He said "hi"`, doc["note"])
	assert.Len(t, doc["days"], 2)
}

func TestRepairTier2(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		check     func(t *testing.T, doc map[string]any)
	}{
		{
			name:      "unescaped quotes inside a string value",
			candidate: `{"note": "He said "hi""}`,
			check: func(t *testing.T, doc map[string]any) {
				assert.Equal(t, `He said "hi"`, doc["note"])
			},
		},
		{
			name:      "trailing commas in array and object",
			candidate: `{"days": [1,2,],}`,
			check: func(t *testing.T, doc map[string]any) {
				assert.Equal(t, []any{float64(1), float64(2)}, doc["days"])
			},
		},
		{
			name:      "trailing comma with interior whitespace",
			candidate: "{\"days\": [1, 2,\n  ]\n}",
			check: func(t *testing.T, doc map[string]any) {
				assert.Len(t, doc["days"], 2)
			},
		},
		{
			name:      "both defects in one candidate",
			candidate: `{"title": "The "Golden" Temple", "tags": ["a", "b",],}`,
			check: func(t *testing.T, doc map[string]any) {
				assert.Equal(t, `The "Golden" Temple`, doc["title"])
				assert.Equal(t, []any{"a", "b"}, doc["tags"])
			},
		},
		{
			name:      "already escaped quotes survive the rewrite",
			candidate: `{"note": "mix of \"escaped\" and "raw" quotes",}`,
			check: func(t *testing.T, doc map[string]any) {
				assert.Equal(t, `mix of "escaped" and "raw" quotes`, doc["note"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Repair(tt.candidate, discardLogger())
			assert.NoError(t, err)
			tt.check(t, doc)
		})
	}
}

func TestRepairUnsalvageable(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
	}{
		{"not JSON at all", "this is prose"},
		{"truncated mid value", `{"days": [{"day": 1, "activities": [{"ti`},
		{"top level array not an object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Repair(tt.candidate, discardLogger())
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, models.ErrUnparseableJSON))
		})
	}
}

func TestEscapeEmbeddedQuotes(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "quote followed by structural comma closes the string",
			in:       `{"a": "x", "b": "y"}`,
			expected: `{"a": "x", "b": "y"}`,
		},
		{
			name:     "quote followed by a word is embedded",
			in:       `{"a": "say "hello" loudly"}`,
			expected: `{"a": "say \"hello\" loudly"}`,
		},
		{
			name:     "key quotes before a colon are structural",
			in:       `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "existing escape sequences pass through",
			in:       `{"a": "tab\t and \"quoted\""}`,
			expected: `{"a": "tab\t and \"quoted\""}`,
		},
		{
			name:     "closing quote at end of input",
			in:       `{"a": "open ended"`,
			expected: `{"a": "open ended"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeEmbeddedQuotes(tt.in))
		})
	}
}

func TestStripTrailingCommas(t *testing.T) {
	assert.Equal(t, `{"a": [1]}`, stripTrailingCommas(`{"a": [1,]}`))
	assert.Equal(t, `{"a": 1}`, stripTrailingCommas(`{"a": 1,}`))
	assert.Equal(t, "{\"a\": [1]\n}", stripTrailingCommas("{\"a\": [1,\n]\n,\n}"))
	// Commas between elements are untouched.
	assert.Equal(t, `{"a": [1, 2]}`, stripTrailingCommas(`{"a": [1, 2]}`))
}
