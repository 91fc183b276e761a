package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/leftweet/nextgamesnippet/internal/game"
	"github.com/leftweet/nextgamesnippet/internal/logger"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

const (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout   = 15 * time.Second
)

// Scraper handles fetching and parsing team schedule pages
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a Scraper for the CBS Sports MLB schedule pages
func New() *Scraper {
	return NewWithBaseURL(team.DefaultBaseURL, Timeout)
}

// NewWithBaseURL creates a Scraper that builds schedule URLs under baseURL.
// A non-positive timeout selects the default.
func NewWithBaseURL(baseURL string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = Timeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// Result is the outcome of scraping one team's schedule page
type Result struct {
	URL     string
	Row     game.RawRow
	Warning *ShortRowWarning
}

// NextGame fetches t's schedule page and extracts its first schedule row.
// A single request is made; failures are returned as *FetchError or *StructureError.
func (s *Scraper) NextGame(ctx context.Context, t team.Team) (*Result, error) {
	pageURL := t.ScheduleURL(s.baseURL)

	start := time.Now()
	doc, err := s.Fetch(ctx, pageURL)
	logger.RecordTiming("scraper.fetch", time.Since(start))
	if err != nil {
		logger.IncrCounter("scraper.fetch_errors")
		return nil, err
	}

	result, err := parseRow(doc, t.Name)
	if err != nil {
		logger.IncrCounter("scraper.structure_errors")
		return nil, err
	}
	result.URL = pageURL

	if result.Warning != nil {
		logger.Warn("Short schedule row", logger.Fields{
			"team":     t.Name,
			"url":      pageURL,
			"found":    result.Warning.Found,
			"expected": result.Warning.Expected,
		})
	}

	return result, nil
}

// Fetch retrieves and parses pageURL
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	logger.Debug("Fetching schedule page", logger.Fields{"url": pageURL})
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("Schedule page response", logger.Fields{
		"url":         pageURL,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	return parseDocument(resp.Body, pageURL)
}

// parseDocument reads an HTML document from r
func parseDocument(r io.Reader, pageURL string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("parsing HTML: %w", err)}
	}
	return doc, nil
}

// parseRow locates and extracts the schedule row from doc
func parseRow(doc *goquery.Document, scrapedFor string) (*Result, error) {
	row, err := LocateScheduleRow(doc)
	if err != nil {
		return nil, err
	}

	raw, warning := ExtractRow(row, scrapedFor)
	return &Result{Row: raw, Warning: warning}, nil
}
