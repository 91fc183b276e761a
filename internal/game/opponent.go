package game

import (
	"regexp"
	"strings"
)

// opponentPattern matches an optional "vs"/"vs."/"@" marker followed by a team code
var opponentPattern = regexp.MustCompile(`(?:vs\.?|@)?\s*([A-Z]{2,3})\b`)

// FullNamer resolves a team abbreviation to its franchise name.
// *team.Directory satisfies it.
type FullNamer interface {
	FullName(abbr string) (string, bool)
}

// ResolveOpponent turns the raw opponent cell ("@ NYM", "vs BOS") into a
// franchise name. Unknown codes fall back to the cell text without its
// "vs. " or "@ " prefix.
func ResolveOpponent(raw string, names FullNamer) string {
	trimmed := strings.TrimSpace(raw)

	if names != nil {
		if m := opponentPattern.FindStringSubmatch(trimmed); m != nil {
			if name, ok := names.FullName(m[1]); ok {
				return name
			}
		}
		if name, ok := names.FullName(trimmed); ok {
			return name
		}
	}

	stripped := strings.TrimPrefix(trimmed, "vs. ")
	stripped = strings.TrimPrefix(stripped, "@ ")
	return strings.TrimSpace(stripped)
}

// RelationOf reports Away when the opponent cell carries the "@" marker
func RelationOf(rawOpponent string) Relation {
	if strings.Contains(rawOpponent, "@") {
		return Away
	}
	return Home
}
