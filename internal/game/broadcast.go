package game

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// timePattern matches "7:05 pm", "7:05p", "12:10 P.M." and similar
	timePattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*([aApP])(?:\.?\s*[mM]\.*)?`)

	// timeTokenPattern matches a single whitespace-delimited time token
	timeTokenPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(?:[aApP]\.?(?:[mM]\.*)?)?$`)
)

// ignoredTVTokens are never taken as a network name
var ignoredTVTokens = map[string]bool{
	"et":   true,
	"pm":   true,
	"am":   true,
	"p":    true,
	"a":    true,
	"p.m.": true,
	"a.m.": true,
}

// networkNames maps the schedule's network codes to their full names.
// Replacements are applied in order as substring substitutions.
var networkNames = []struct {
	code string
	name string
}{
	{"ATV", "Apple TV"},
	{"AMZN", "Amazon"},
	{"MLBN", "MLB Network"},
	{"PCOCK", "Peacock"},
	{"ROKU", "The Roku Channel"},
	{"NFLX", "Netflix"},
}

// ParseTime extracts the first pitch time from the time/TV cell and formats it
// as "7:05 p.m. ET". Anything without a recognizable time is "TBD".
func ParseTime(raw string) string {
	m := timePattern.FindStringSubmatch(raw)
	if m == nil {
		return TBD
	}
	return fmt.Sprintf("%s %s.m. ET", m[1], strings.ToLower(m[2]))
}

// ResolveTV picks the broadcast network out of the time/TV cell. parsedTime is
// the result of ParseTime on the same cell. The network is the text after the
// last "/", or the whole cell when no time was found, or else the first token
// that is neither a time nor a time marker.
func ResolveTV(raw, parsedTime string) string {
	text := strings.TrimSpace(raw)

	var candidate string
	switch {
	case strings.EqualFold(text, TBD) || text == NotAvailable:
		candidate = ""
	case strings.Contains(text, "/"):
		candidate = strings.TrimSpace(text[strings.LastIndex(text, "/")+1:])
	case parsedTime == TBD:
		candidate = text
	default:
		for _, token := range strings.Fields(text) {
			if timeTokenPattern.MatchString(token) || ignoredTVTokens[strings.ToLower(token)] {
				continue
			}
			candidate = token
			break
		}
	}

	if candidate == "" {
		return NotSpecified
	}

	for _, n := range networkNames {
		candidate = strings.ReplaceAll(candidate, n.code, n.name)
	}
	return candidate
}
