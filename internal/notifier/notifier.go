package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/leftweet/nextgamesnippet/internal/config"
	"github.com/leftweet/nextgamesnippet/internal/game"
	"github.com/leftweet/nextgamesnippet/internal/summary"
)

// MaxTweetLength is the Twitter character limit
const MaxTweetLength = 280

// Notifier posts one piece of text to a channel
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// FormatPost builds the text shared for g. A generated summary is used as
// is; otherwise the post lists the game fields.
func FormatPost(g game.Game, s *summary.Result) string {
	var b strings.Builder

	if s != nil && s.Copyable() {
		b.WriteString(s.Text)
	} else {
		fmt.Fprintf(&b, "Next up: %s\n", g.Matchup())
		fmt.Fprintf(&b, "%s, %s\n", g.Date, g.Time)
		fmt.Fprintf(&b, "%s\n", g.Venue)
		fmt.Fprintf(&b, "TV: %s", g.TV)
	}

	if tag := hashtag(g.TeamMascot); tag != "" {
		b.WriteString("\n\n" + tag + " #MLB")
	}

	return b.String()
}

func hashtag(mascot string) string {
	var b strings.Builder
	for _, r := range mascot {
		if r == ' ' || r == '.' || r == '\'' {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// truncate shortens text to at most limit characters, ending with "..."
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit-3]) + "..."
}

// Channel names accepted by New
const (
	ChannelDryRun   = "dry-run"
	ChannelTwitter  = "twitter"
	ChannelTelegram = "telegram"
)

// New returns the notifier for channel. Dry runs write to w.
func New(channel string, cfg *config.Config, w io.Writer) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(channel)) {
	case ChannelDryRun, "":
		return NewDryRunNotifier(w), nil
	case ChannelTwitter:
		return NewTwitterNotifier(cfg.Twitter)
	case ChannelTelegram:
		return NewTelegramNotifier(cfg.Telegram)
	default:
		return nil, fmt.Errorf("unknown channel: %s (must be %s, %s or %s)", channel, ChannelDryRun, ChannelTwitter, ChannelTelegram)
	}
}
