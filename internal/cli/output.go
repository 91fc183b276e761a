package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/leftweet/nextgamesnippet/internal/calendar"
	"github.com/leftweet/nextgamesnippet/internal/snippet"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(s)
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", s)
	}
	return format, nil
}

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time `json:"checked_at"`
	*snippet.Report
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		ics, err := calendar.GenerateICS(result.Game, result.Team, result.CheckedAt)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, ics)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteTeams writes the team list in the specified format
func WriteTeams(w io.Writer, teams []team.Team, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, teams)
	case FormatText:
		for _, t := range teams {
			fmt.Fprintf(w, "%-4s %s\n", t.Abbreviation, t.Name)
		}
		fmt.Fprintf(w, "\nTotal: %d teams\n", len(teams))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs the next game as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	g := result.Game

	fmt.Fprintf(w, "Next game for the %s\n\n", result.Team.Name)
	fmt.Fprintf(w, "  Matchup:          %s\n", g.Matchup())
	fmt.Fprintf(w, "  Date:             %s\n", g.Date)
	fmt.Fprintf(w, "  Time:             %s\n", g.Time)
	fmt.Fprintf(w, "  TV:               %s\n", g.TV)
	fmt.Fprintf(w, "  Venue:            %s\n", g.Venue)
	fmt.Fprintf(w, "  %-17s %s\n", g.TeamMascot+" starter:", g.TeamStarter)
	fmt.Fprintf(w, "  Opponent starter: %s\n", g.OpponentStarter)

	if verbose {
		raw := result.Raw
		fmt.Fprintf(w, "\nScraped from %s\n", result.URL)
		fmt.Fprintf(w, "  Date:         %s\n", raw.Date)
		fmt.Fprintf(w, "  OPP:          %s\n", raw.Opponent)
		fmt.Fprintf(w, "  Time / TV:    %s\n", raw.TimeTV)
		fmt.Fprintf(w, "  Venue:        %s\n", raw.Venue)
		fmt.Fprintf(w, "  Home starter: %s\n", raw.HomeStarter)
		fmt.Fprintf(w, "  Away starter: %s\n", raw.AwayStarter)
	}

	if result.Summary != nil {
		fmt.Fprintf(w, "\nSummary:\n%s\n", result.Summary.Text)
	}

	return nil
}
