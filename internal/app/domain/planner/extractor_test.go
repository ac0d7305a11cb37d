package planner

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roamgen/roamgen/internal/app/models"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  error
	}{
		{
			name:     "already valid JSON passes through",
			raw:      `{"id": "trip-1", "days": []}`,
			expected: `{"id": "trip-1", "days": []}`,
		},
		{
			name:     "surrounding whitespace is trimmed",
			raw:      "\n  {\"ok\": true}  \n",
			expected: `{"ok": true}`,
		},
		{
			name:     "markdown fenced JSON inside prose",
			raw:      "Here is your itinerary:\n```json\n{\"a\":1}\n```\nEnjoy your trip!",
			expected: `{"a":1}`,
		},
		{
			name:     "reasoning span before the payload is stripped",
			raw:      "<think>The user wants {json} so I should plan carefully</think>{\"title\": \"Goa\"}",
			expected: `{"title": "Goa"}`,
		},
		{
			name:     "multiline reasoning span",
			raw:      "<think>\nstep one\nstep two\n</think>\n{\"days\": [{\"day\": 1}]}",
			expected: `{"days": [{"day": 1}]}`,
		},
		{
			name:     "prose before and after braces",
			raw:      "Sure! {\"id\": \"x\"} Hope this helps.",
			expected: `{"id": "x"}`,
		},
		{
			name:    "no braces at all",
			raw:     "I cannot generate an itinerary for that destination.",
			wantErr: models.ErrNoJSONFound,
		},
		{
			name:    "closing brace before opening brace",
			raw:     "} nothing useful {",
			wantErr: models.ErrNoJSONFound,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: models.ErrNoJSONFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractJSONGreedyTruncation(t *testing.T) {
	// The outermost brace span is taken greedily, so nested objects and
	// multiple top-level candidates are captured in full.
	raw := "prefix {\"outer\": {\"inner\": 1}} suffix"
	got, err := ExtractJSON(raw)
	assert.NoError(t, err)
	assert.Equal(t, `{"outer": {"inner": 1}}`, got)
	assert.True(t, json.Valid([]byte(got)))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", truncateForLog("short", 200))
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateForLog(string(long), 200)
	assert.Len(t, got, 203)
	assert.Equal(t, "...", got[200:])
}
