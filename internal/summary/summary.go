package summary

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/leftweet/nextgamesnippet/internal/game"
	"github.com/leftweet/nextgamesnippet/internal/logger"
)

// FailurePrefix starts every diagnostic produced when the generation call fails.
// Callers can test for it to suppress actions such as the copy button.
const FailurePrefix = "Error generating summary: "

const (
	blockedMessage  = "Summary unavailable: the response was blocked by the provider's safety filters."
	emptyMessage    = "Summary unavailable: the provider returned an empty response."
	disabledMessage = "Summary disabled: no text-generation API key is configured."
)

// ErrBlocked is returned by a Generator when the provider refused to answer
var ErrBlocked = errors.New("response blocked")

// Generator produces text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Status distinguishes the possible summary outcomes
type Status string

const (
	StatusGenerated Status = "generated"
	StatusBlocked   Status = "blocked"
	StatusFailed    Status = "failed"
	StatusDisabled  Status = "disabled"
)

// Result is either generated prose or a diagnostic message
type Result struct {
	Status Status `json:"status"`
	Text   string `json:"text"`
}

// Copyable reports whether Text is a summary worth offering to copy or share
func (r Result) Copyable() bool {
	return r.Status == StatusGenerated
}

// Summarize asks gen for a preview of g. It never returns an error: blocked,
// empty and failed calls are reported through the Result status. A nil
// Generator yields StatusDisabled.
func Summarize(ctx context.Context, gen Generator, g game.Game) Result {
	if gen == nil {
		return Result{Status: StatusDisabled, Text: disabledMessage}
	}

	prompt := BuildPrompt(g)
	logger.Debug("Requesting summary", logger.Fields{"matchup": g.Matchup(), "prompt_chars": len(prompt)})

	start := time.Now()
	text, err := gen.Generate(ctx, prompt)
	logger.RecordTiming("summary.generate", time.Since(start))

	switch {
	case errors.Is(err, ErrBlocked):
		logger.IncrCounter("summary.blocked")
		logger.Warn("Summary blocked", logger.Fields{"matchup": g.Matchup()})
		return Result{Status: StatusBlocked, Text: blockedMessage}
	case err != nil:
		logger.IncrCounter("summary.failed")
		logger.Error("Summary generation failed", logger.Fields{"matchup": g.Matchup()}, err)
		return Result{Status: StatusFailed, Text: FailurePrefix + err.Error()}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logger.IncrCounter("summary.blocked")
		return Result{Status: StatusBlocked, Text: emptyMessage}
	}

	logger.IncrCounter("summary.generated")
	return Result{Status: StatusGenerated, Text: text}
}
