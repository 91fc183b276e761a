package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultGeminiBaseURL    = "https://generativelanguage.googleapis.com/"
	DefaultGeminiAPIVersion = "v1beta"
	DefaultGeminiModel      = "gemini-1.5-flash"
	timeout                 = 30 * time.Second
)

// blockedFinishReasons are candidate finish reasons that mean the answer was withheld
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
	genai.FinishReasonRecitation:        true,
}

// GeminiClient generates text through the Gemini API
type GeminiClient struct {
	client  *genai.Client
	model   string
	baseURL string
	timeout time.Duration
}

// NewGeminiClient creates a client for model using apiKey
func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	return NewGeminiClientWithBaseURL(apiKey, model, DefaultGeminiBaseURL, timeout)
}

// NewGeminiClientWithBaseURL creates a client against a custom endpoint root.
// A non-positive callTimeout selects the default. No request is made until
// Generate is called.
func NewGeminiClientWithBaseURL(apiKey, model, baseURL string, callTimeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if callTimeout <= 0 {
		callTimeout = timeout
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: callTimeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: DefaultGeminiAPIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		baseURL: baseURL,
		timeout: callTimeout,
	}, nil
}

// Generate sends prompt as a single user turn and returns the first candidate's text.
// Safety-blocked responses return an error wrapping ErrBlocked.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt is required")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("gemini API error (status %d): %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("generating content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates returned", ErrBlocked)
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	if candidate.Content != nil {
		for _, p := range candidate.Content.Parts {
			if p == nil || p.Thought {
				continue
			}
			text.WriteString(p.Text)
		}
	}

	if text.Len() == 0 && blockedFinishReasons[candidate.FinishReason] {
		return "", fmt.Errorf("%w: finish reason %s", ErrBlocked, candidate.FinishReason)
	}

	return text.String(), nil
}
