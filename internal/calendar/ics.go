// Package calendar renders a normalized game as an iCalendar (.ics) entry.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // America/New_York on hosts without zoneinfo

	"github.com/leftweet/nextgamesnippet/internal/game"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

// GameLength is the assumed duration of a timed game
const GameLength = 3 * time.Hour

// ErrNoDate is returned when the game date is not in "Month Day" form
var ErrNoDate = errors.New("game date is not a calendar date")

var eastern = mustLoad("America/New_York")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// StartTime resolves the game's date and time relative to now. The schedule
// omits the year, so a month and day more than a day in the past belong to
// the following year. ok is false when the time is TBD; start is then
// midnight Eastern on the game day.
func StartTime(g game.Game, now time.Time) (start time.Time, ok bool, err error) {
	day, err := time.Parse("January 2", g.Date)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %q", ErrNoDate, g.Date)
	}

	now = now.In(eastern)
	year := now.Year()
	if time.Date(year, day.Month(), day.Day(), 0, 0, 0, 0, eastern).Before(now.AddDate(0, 0, -1)) {
		year++
	}

	untimed := time.Date(year, day.Month(), day.Day(), 0, 0, 0, 0, eastern)

	// "7:05 p.m. ET" or "11:35 a.m. ET"
	hhmm, meridiem, _ := strings.Cut(g.Time, " ")
	pm := strings.HasPrefix(meridiem, "p.m.")
	if !pm && !strings.HasPrefix(meridiem, "a.m.") {
		return untimed, false, nil
	}
	clock, err := time.Parse("3:04", hhmm)
	if err != nil {
		return untimed, false, nil
	}

	hour := clock.Hour() % 12
	if pm {
		hour += 12
	}
	return time.Date(year, day.Month(), day.Day(), hour, clock.Minute(), 0, 0, eastern), true, nil
}

// GenerateICS generates an iCalendar file for t's next game
func GenerateICS(g game.Game, t team.Team, now time.Time) (string, error) {
	start, timed, err := StartTime(g, now)
	if err != nil {
		return "", err
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//nextgame//nextgamesnippet//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("BEGIN:VEVENT\r\n")

	fmt.Fprintf(&ics, "UID:%s-%s@nextgame\r\n", strings.ToLower(t.Abbreviation), start.Format("20060102"))
	fmt.Fprintf(&ics, "DTSTAMP:%s\r\n", formatICSTime(now))

	if timed {
		fmt.Fprintf(&ics, "DTSTART:%s\r\n", formatICSTime(start))
		fmt.Fprintf(&ics, "DTEND:%s\r\n", formatICSTime(start.Add(GameLength)))
	} else {
		fmt.Fprintf(&ics, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))
		fmt.Fprintf(&ics, "DTEND;VALUE=DATE:%s\r\n", start.AddDate(0, 0, 1).Format("20060102"))
	}

	fmt.Fprintf(&ics, "SUMMARY:%s\r\n", escapeICS(g.Matchup()))

	description := fmt.Sprintf("TV: %s\n%s starter: %s\nOpponent starter: %s", g.TV, g.TeamMascot, g.TeamStarter, g.OpponentStarter)
	if !timed {
		description = "Start time TBD\n" + description
	}
	fmt.Fprintf(&ics, "DESCRIPTION:%s\r\n", escapeICS(description))
	fmt.Fprintf(&ics, "LOCATION:%s\r\n", escapeICS(g.Venue))
	fmt.Fprintf(&ics, "URL:%s\r\n", t.ScheduleURL(team.DefaultBaseURL))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), nil
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes text values per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
