package planner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/roamgen/roamgen/internal/app/models"
)

// Some reasoning models wrap chain-of-thought in <think> tags before the
// actual answer; those spans never contain the payload.
var thinkSpanRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// ExtractJSON isolates the JSON payload embedded in free-form model output.
// Fast path: text that already parses as JSON is returned unchanged. Otherwise
// reasoning spans are stripped, the text is truncated to the outermost
// `{`...`}` span (greedy, not brace-depth-aware) and markdown fences removed.
// Returns models.ErrNoJSONFound when no brace-delimited span exists at all.
func ExtractJSON(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	cleaned := thinkSpanRe.ReplaceAllString(trimmed, "")

	firstBrace := strings.Index(cleaned, "{")
	lastBrace := strings.LastIndex(cleaned, "}")
	if firstBrace == -1 || lastBrace == -1 || lastBrace < firstBrace {
		return "", fmt.Errorf("%w: %q", models.ErrNoJSONFound, truncateForLog(raw, 200))
	}
	cleaned = cleaned[firstBrace : lastBrace+1]

	// Remove markdown code block markers
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	return strings.TrimSpace(cleaned), nil
}

func truncateForLog(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
