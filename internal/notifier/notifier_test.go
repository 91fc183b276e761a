package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API

	"github.com/leftweet/nextgamesnippet/internal/config"
	"github.com/leftweet/nextgamesnippet/internal/game"
	"github.com/leftweet/nextgamesnippet/internal/summary"
)

var testGame = game.Game{
	Date:            "July 4",
	TeamMascot:      "Red Sox",
	Opponent:        "New York Yankees",
	Relation:        game.Home,
	Time:            "7:10 p.m. ET",
	TV:              "Apple TV",
	Venue:           "Fenway Park",
	TeamStarter:     "Brayan Bello",
	OpponentStarter: "Starter TBD",
}

func TestFormatPost(t *testing.T) {
	tests := []struct {
		name     string
		summary  *summary.Result
		contains []string
		excludes []string
	}{
		{
			name: "fields without summary",
			contains: []string{
				"Next up: Red Sox vs. New York Yankees",
				"July 4, 7:10 p.m. ET",
				"Fenway Park",
				"TV: Apple TV",
				"#RedSox #MLB",
			},
		},
		{
			name:     "generated summary",
			summary:  &summary.Result{Status: summary.StatusGenerated, Text: "The Red Sox host the Yankees tonight."},
			contains: []string{"The Red Sox host the Yankees tonight.", "#RedSox"},
			excludes: []string{"Next up"},
		},
		{
			name:     "failed summary falls back to fields",
			summary:  &summary.Result{Status: summary.StatusFailed, Text: summary.FailurePrefix + "boom"},
			contains: []string{"Next up"},
			excludes: []string{summary.FailurePrefix},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPost(testGame, tt.summary)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatPost() missing %q in:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("FormatPost() should not contain %q:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 280); got != "short" {
		t.Errorf("truncate() = %q", got)
	}

	long := strings.Repeat("⚾", 300)
	got := truncate(long, MaxTweetLength)
	if n := utf8.RuneCountInString(got); n != MaxTweetLength {
		t.Errorf("truncated length = %d, want %d", n, MaxTweetLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated text should end with ellipsis")
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf)

	if err := n.Notify(context.Background(), "Red Sox vs. New York Yankees"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Red Sox vs. New York Yankees") {
		t.Errorf("output missing post: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "(Length: 28 characters)") {
		t.Errorf("output missing length: %q", buf.String())
	}

	if err := n.Notify(context.Background(), ""); err == nil {
		t.Error("Notify(\"\") expected error")
	}
}

type stubStatuses struct {
	posted []string
	err    error
}

func (s *stubStatuses) Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, *http.Response, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	s.posted = append(s.posted, status)
	return &twitter.Tweet{IDStr: "42"}, nil, nil
}

func TestTwitterNotifier(t *testing.T) {
	statuses := &stubStatuses{}
	n := &TwitterNotifier{statuses: statuses}

	if err := n.Notify(context.Background(), strings.Repeat("a", 400)); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if len(statuses.posted) != 1 {
		t.Fatalf("posted %d tweets, want 1", len(statuses.posted))
	}
	if got := len(statuses.posted[0]); got != MaxTweetLength {
		t.Errorf("tweet length = %d, want %d", got, MaxTweetLength)
	}

	failing := &TwitterNotifier{statuses: &stubStatuses{err: errors.New("rate limited")}}
	if err := failing.Notify(context.Background(), "hello"); err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("Notify() error = %v, want wrapped rate limit error", err)
	}
}

func TestNewTwitterNotifier_MissingCredentials(t *testing.T) {
	if _, err := NewTwitterNotifier(config.Twitter{APIKey: "k"}); err == nil {
		t.Error("expected error for partial credentials")
	}

	n, err := NewTwitterNotifier(config.Twitter{APIKey: "k", APISecret: "s", AccessToken: "t", AccessSecret: "a"})
	if err != nil {
		t.Fatalf("NewTwitterNotifier() error = %v", err)
	}
	if n.statuses == nil {
		t.Error("statuses client not set")
	}
}

func TestTelegramNotifier(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		response   string
		wantErr    bool
	}{
		{"success", http.StatusOK, `{"ok":true}`, false},
		{"api rejects", http.StatusOK, `{"ok":false,"description":"chat not found"}`, true},
		{"http error", http.StatusUnauthorized, `{"ok":false}`, true},
		{"bad json", http.StatusOK, `not json`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Errorf("decoding request: %v", err)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			n, err := NewTelegramNotifierWithBaseURL(config.Telegram{BotToken: "TOKEN", ChatID: "123"}, server.URL)
			if err != nil {
				t.Fatal(err)
			}

			err = n.Notify(context.Background(), "Red Sox vs. <Yankees>")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Notify() error = %v, wantErr %v", err, tt.wantErr)
			}

			if gotPath != "/botTOKEN/sendMessage" {
				t.Errorf("path = %q", gotPath)
			}
			if got["chat_id"] != "123" {
				t.Errorf("chat_id = %v", got["chat_id"])
			}
			if got["text"] != "Red Sox vs. &lt;Yankees&gt;" {
				t.Errorf("text = %v, want HTML escaped", got["text"])
			}
		})
	}
}

func TestNewTelegramNotifier_Validation(t *testing.T) {
	if _, err := NewTelegramNotifier(config.Telegram{ChatID: "1"}); err == nil {
		t.Error("expected error without bot token")
	}
	if _, err := NewTelegramNotifier(config.Telegram{BotToken: "t"}); err == nil {
		t.Error("expected error without chat ID")
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	var buf bytes.Buffer

	n, err := New("dry-run", cfg, &buf)
	if err != nil {
		t.Fatalf("New(dry-run) error = %v", err)
	}
	if _, ok := n.(*DryRunNotifier); !ok {
		t.Errorf("New(dry-run) = %T", n)
	}

	if _, err := New("twitter", cfg, &buf); err == nil {
		t.Error("New(twitter) without credentials should fail")
	}
	if _, err := New("telegram", cfg, &buf); err == nil {
		t.Error("New(telegram) without credentials should fail")
	}
	if _, err := New("carrier-pigeon", cfg, &buf); err == nil {
		t.Error("New(unknown) should fail")
	}
}
