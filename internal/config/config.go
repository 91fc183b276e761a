// Package config loads nextgame settings from the environment.
//
// An optional .env file is read first; real environment variables always win.
// Only GEMINI_API_KEY matters for the core feature set, and leaving it unset
// simply disables summaries.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/leftweet/nextgamesnippet/internal/logger"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

// Config is built once at startup and passed to the components that need it
type Config struct {
	Scraper  Scraper
	Summary  Summary
	Server   Server
	Twitter  Twitter
	Telegram Telegram
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
}

type Scraper struct {
	BaseURL string        `envconfig:"SCHEDULE_BASE_URL" default:"https://www.cbssports.com/mlb/teams"`
	Timeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
}

type Summary struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/"`
	Timeout time.Duration `envconfig:"SUMMARY_TIMEOUT" default:"30s"`
}

// Enabled reports whether a text-generation credential is configured
func (s Summary) Enabled() bool {
	return s.APIKey != ""
}

type Server struct {
	Addr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

type Twitter struct {
	APIKey       string `envconfig:"TWITTER_API_KEY"`
	APISecret    string `envconfig:"TWITTER_API_SECRET"`
	AccessToken  string `envconfig:"TWITTER_ACCESS_TOKEN"`
	AccessSecret string `envconfig:"TWITTER_ACCESS_SECRET"`
}

type Telegram struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `envconfig:"TELEGRAM_CHAT_ID"`
}

// New loads .env (if present) and then processes the environment
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv processes the environment without reading .env
func FromEnv() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Scraper.BaseURL == "" {
		c.Scraper.BaseURL = team.DefaultBaseURL
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.Scraper.Timeout)
	}
	if c.Summary.Timeout <= 0 {
		return fmt.Errorf("SUMMARY_TIMEOUT must be positive, got %s", c.Summary.Timeout)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger builds the structured logger selected by LOG_LEVEL
func (c *Config) Logger(w io.Writer) *logger.Logger {
	level, _ := logger.ParseLevel(c.LogLevel)
	return logger.New(level, w)
}
