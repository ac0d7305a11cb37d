package planner

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/roamgen/roamgen/internal/app/models"
)

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// Repair coerces an extracted candidate string into a parsed JSON object
// using tiered heuristics. Tier 1 parses as-is. Tier 2 escapes embedded
// quotes inside string values and strips trailing commas, then re-parses.
// Nothing more aggressive is attempted: the two textual fixes cover the two
// failure classes LLM output actually exhibits, and anything beyond that is
// not salvageable with bounded string rewrites.
//
// Returns models.ErrUnparseableJSON (wrapping the candidate for diagnostics)
// when both tiers fail.
func Repair(candidate string, logger *slog.Logger) (map[string]any, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
		return parsed, nil
	}

	logger.Debug("Repair: tier 1 parse failed, applying textual fixes")

	fixed := escapeEmbeddedQuotes(candidate)
	fixed = stripTrailingCommas(fixed)

	if err := json.Unmarshal([]byte(fixed), &parsed); err != nil {
		logger.Debug("Repair: tier 2 parse failed", "error", err)
		return nil, fmt.Errorf("%w: %s", models.ErrUnparseableJSON, truncateForLog(candidate, 500))
	}

	logger.Debug("Repair: tier 2 succeeded")
	return parsed, nil
}

// escapeEmbeddedQuotes escapes unescaped quote characters that appear inside
// string values. A quote encountered inside a string only terminates it when
// the next non-whitespace character is a structural delimiter; any other
// quote came from unescaped natural-language text and is rewritten to \".
func escapeEmbeddedQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString && c == '\\' && i+1 < len(s):
			// Keep existing escape sequences intact.
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
		case inString && c == '"':
			if closesString(s, i+1) {
				inString = false
				b.WriteByte(c)
			} else {
				b.WriteString(`\"`)
			}
		case !inString && c == '"':
			inString = true
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// closesString reports whether a quote at position i-1 terminates a JSON
// string, judged by the first non-whitespace character that follows it.
func closesString(s string, i int) bool {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case ',', '}', ']', ':':
			return true
		default:
			return false
		}
	}
	return true // end of input
}

// stripTrailingCommas removes commas immediately preceding a closing brace or
// bracket, the usual artifact of truncated generation.
func stripTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}
