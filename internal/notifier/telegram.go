package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/leftweet/nextgamesnippet/internal/config"
	"github.com/leftweet/nextgamesnippet/internal/logger"
)

const (
	DefaultTelegramBaseURL = "https://api.telegram.org"
	telegramTimeout        = 10 * time.Second
)

// TelegramNotifier sends snippets to a Telegram chat through the Bot API
type TelegramNotifier struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

// NewTelegramNotifier creates a notifier for the configured bot and chat
func NewTelegramNotifier(creds config.Telegram) (*TelegramNotifier, error) {
	return NewTelegramNotifierWithBaseURL(creds, DefaultTelegramBaseURL)
}

// NewTelegramNotifierWithBaseURL creates a notifier against a custom API root
func NewTelegramNotifierWithBaseURL(creds config.Telegram, baseURL string) (*TelegramNotifier, error) {
	if creds.BotToken == "" {
		return nil, fmt.Errorf("bot token is required (TELEGRAM_BOT_TOKEN)")
	}
	if creds.ChatID == "" {
		return nil, fmt.Errorf("chat ID is required (TELEGRAM_CHAT_ID)")
	}

	return &TelegramNotifier{
		botToken: creds.BotToken,
		chatID:   creds.ChatID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: telegramTimeout,
		},
	}, nil
}

// Notify sends text to the configured chat
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("post text is required")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)

	payload := map[string]interface{}{
		"chat_id":                  n.chatID,
		"text":                     html.EscapeString(text),
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	logger.Info("Sent Telegram message", logger.Fields{"chat_id": n.chatID})
	return nil
}
