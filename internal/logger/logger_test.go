package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "next game scraped",
			fields:  Fields{"team": "Philadelphia Phillies"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("timeout"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := buf.Len()

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > before
			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_EntryFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("fetch failed", Fields{"team": "PHI", "status": 503}, errors.New("unexpected status code: 503"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}

	if entry.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR", entry.Level)
	}
	if entry.Message != "fetch failed" {
		t.Errorf("Message = %q", entry.Message)
	}
	if entry.Error != "unexpected status code: 503" {
		t.Errorf("Error = %q", entry.Error)
	}
	if entry.Fields["team"] != "PHI" {
		t.Errorf("Fields[team] = %v", entry.Fields["team"])
	}
	if _, err := time.Parse(time.RFC3339, entry.Timestamp); err != nil {
		t.Errorf("Timestamp %q is not RFC3339: %v", entry.Timestamp, err)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := New(LevelInfo, &buf)
	child := parent.With(Fields{"request_id": "abc123"})

	child.Info("request complete", Fields{"status": 200})
	parent.Info("no request", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first, second LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}

	if first.Fields["request_id"] != "abc123" {
		t.Errorf("child entry missing request_id: %v", first.Fields)
	}
	if first.Fields["status"] != float64(200) {
		t.Errorf("child entry missing status: %v", first.Fields)
	}
	if _, ok := second.Fields["request_id"]; ok {
		t.Errorf("parent entry should not carry child fields: %v", second.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("lookups")
	m.IncrCounter("lookups")
	m.IncrCounter("lookups")

	if got := m.Snapshot().Counters["lookups"]; got != 3 {
		t.Errorf("Counter = %v, want 3", got)
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("scraper.fetch", 100*time.Millisecond)
	m.RecordTiming("scraper.fetch", 200*time.Millisecond)
	m.RecordTiming("scraper.fetch", 150*time.Millisecond)

	stats := m.Snapshot().Timings["scraper.fetch"]
	if stats.Count != 3 {
		t.Errorf("Timing count = %v, want 3", stats.Count)
	}
	if stats.Min != "100ms" {
		t.Errorf("Min timing = %v, want 100ms", stats.Min)
	}
	if stats.Max != "200ms" {
		t.Errorf("Max timing = %v, want 200ms", stats.Max)
	}
	if stats.Average != "150ms" {
		t.Errorf("Average timing = %v, want 150ms", stats.Average)
	}
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("a")

	snap := m.Snapshot()
	m.IncrCounter("a")

	if snap.Counters["a"] != 1 {
		t.Errorf("snapshot changed after update: %v", snap.Counters["a"])
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	original := Default()
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(original)

	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("wrote %d lines, want 4", got)
	}

	IncrCounter("test")
	RecordTiming("test", time.Second)

	snapshot := MetricsSnapshot()
	if snapshot.Counters["test"] < 1 {
		t.Error("MetricsSnapshot() missing counter")
	}
}
