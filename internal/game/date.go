package game

import (
	"strings"
	"time"
)

// dateLayouts are tried in order; the schedule uses abbreviated month names
var dateLayouts = []string{"Jan 2", "January 2"}

// NormalizeDate converts a schedule date such as "Tue, Jul 4" or "Jul 4" into
// "July 4". The year is never present on the page and is not inferred.
// Unparseable input is returned unchanged.
func NormalizeDate(raw string) string {
	text := strings.TrimSpace(raw)

	if idx := strings.Index(text, ","); idx >= 0 {
		text = strings.TrimSpace(text[idx+1:])
		if parts := strings.Fields(text); len(parts) > 2 {
			text = strings.Join(parts[:2], " ")
		}
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t.Format("January 2")
		}
	}

	return raw
}
