// Package snippet runs the next-game lookup for one team: fetch the schedule
// page, extract and normalize the first row, and optionally summarize it.
//
// Each call is independent. Nothing is cached, so repeating a lookup fetches
// the page again.
package snippet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leftweet/nextgamesnippet/internal/config"
	"github.com/leftweet/nextgamesnippet/internal/game"
	"github.com/leftweet/nextgamesnippet/internal/logger"
	"github.com/leftweet/nextgamesnippet/internal/scraper"
	"github.com/leftweet/nextgamesnippet/internal/summary"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

// Fetcher retrieves the raw next-game row for a team. *scraper.Scraper satisfies it.
type Fetcher interface {
	NextGame(ctx context.Context, t team.Team) (*scraper.Result, error)
}

// Report is everything produced by one lookup
type Report struct {
	Team    team.Team       `json:"team"`
	URL     string          `json:"url"`
	Raw     game.RawRow     `json:"raw"`
	Game    game.Game       `json:"game"`
	Warning string          `json:"warning,omitempty"`
	Summary *summary.Result `json:"summary,omitempty"`
}

// Service performs lookups
type Service struct {
	directory      *team.Directory
	fetcher        Fetcher
	normalizer     *game.Normalizer
	generator      summary.Generator
	summaryTimeout time.Duration
}

// NewService wires a service from its parts. gen may be nil to disable summaries.
func NewService(dir *team.Directory, fetcher Fetcher, gen summary.Generator) *Service {
	return &Service{
		directory:      dir,
		fetcher:        fetcher,
		normalizer:     game.NewNormalizer(dir),
		generator:      gen,
		summaryTimeout: 30 * time.Second,
	}
}

// New builds the production service from cfg: the MLB directory, the CBS
// scraper, and a Gemini generator when an API key is configured.
func New(cfg *config.Config) (*Service, error) {
	dir := team.MLB()
	sc := scraper.NewWithBaseURL(cfg.Scraper.BaseURL, cfg.Scraper.Timeout)

	var gen summary.Generator
	if cfg.Summary.Enabled() {
		client, err := summary.NewGeminiClientWithBaseURL(cfg.Summary.APIKey, cfg.Summary.Model, cfg.Summary.BaseURL, cfg.Summary.Timeout)
		if err != nil {
			return nil, fmt.Errorf("creating summary client: %w", err)
		}
		gen = client
	} else {
		logger.Info("Summaries disabled", logger.Fields{"reason": "GEMINI_API_KEY not set"})
	}

	svc := NewService(dir, sc, gen)
	svc.summaryTimeout = cfg.Summary.Timeout
	return svc, nil
}

// Directory returns the team directory used for lookups
func (s *Service) Directory() *team.Directory {
	return s.directory
}

// SummaryEnabled reports whether a text generator is configured
func (s *Service) SummaryEnabled() bool {
	return s.generator != nil
}

// Lookup resolves query to a team and runs NextGame for it
func (s *Service) Lookup(ctx context.Context, query string, withSummary bool) (*Report, error) {
	t, err := s.directory.Resolve(query)
	if err != nil {
		return nil, err
	}
	return s.NextGame(ctx, t, withSummary)
}

// NextGame scrapes and normalizes t's next game. Summary failures never fail
// the lookup; they are reported in Report.Summary.
func (s *Service) NextGame(ctx context.Context, t team.Team, withSummary bool) (*Report, error) {
	start := time.Now()
	logger.IncrCounter("lookups")

	result, err := s.fetcher.NextGame(ctx, t)
	if err != nil {
		logger.Error("Next game lookup failed", logger.Fields{"team": t.Name}, err)
		return nil, err
	}

	report := &Report{
		Team: t,
		URL:  result.URL,
		Raw:  result.Row,
		Game: s.normalizer.Normalize(result.Row, t),
	}
	logger.Debug("Schedule row extracted", logger.Fields{
		"team":     t.Name,
		"url":      result.URL,
		"date":     result.Row.Date,
		"opponent": result.Row.Opponent,
		"time_tv":  result.Row.TimeTV,
		"venue":    result.Row.Venue,
		"home_sp":  result.Row.HomeStarter,
		"away_sp":  result.Row.AwayStarter,
	})
	if result.Warning != nil {
		report.Warning = result.Warning.String()
	}

	if withSummary && s.generator != nil {
		ctx, cancel := context.WithTimeout(ctx, s.summaryTimeout)
		defer cancel()
		res := summary.Summarize(ctx, s.generator, report.Game)
		report.Summary = &res
	}

	logger.RecordTiming("lookup", time.Since(start))
	logger.Info("Next game found", logger.Fields{
		"team":        t.Name,
		"matchup":     report.Game.Matchup(),
		"date":        report.Game.Date,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return report, nil
}

// UserMessage converts a lookup error into text suitable for an error banner
func UserMessage(err error) string {
	var fetchErr *scraper.FetchError
	var structErr *scraper.StructureError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, team.ErrUnknownTeam):
		return "Please select a valid team."
	case errors.As(err, &fetchErr):
		if fetchErr.StatusCode != 0 {
			return fmt.Sprintf("Error fetching the schedule page: the site answered with status %d.", fetchErr.StatusCode)
		}
		return fmt.Sprintf("Error fetching the schedule page: %v", fetchErr.Err)
	case errors.As(err, &structErr):
		return fmt.Sprintf("Could not read the schedule (%s). The page layout may have changed.", structErr.Detail)
	default:
		return fmt.Sprintf("Could not retrieve game data: %v", err)
	}
}
