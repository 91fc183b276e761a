package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/leftweet/nextgamesnippet/internal/config"
	"github.com/leftweet/nextgamesnippet/internal/logger"
)

// statusUpdater is the part of twitter.StatusService used here
type statusUpdater interface {
	Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, *http.Response, error)
}

// TwitterNotifier posts snippets as tweets
type TwitterNotifier struct {
	statuses statusUpdater
}

// NewTwitterNotifier creates a Twitter notifier from the configured credentials
func NewTwitterNotifier(creds config.Twitter) (*TwitterNotifier, error) {
	if creds.APIKey == "" || creds.APISecret == "" || creds.AccessToken == "" || creds.AccessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials (TWITTER_API_KEY, TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN, TWITTER_ACCESS_SECRET)")
	}

	oauthConfig := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := oauthConfig.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{statuses: client.Statuses}, nil
}

// Notify posts text as a single tweet, truncated to the character limit
func (n *TwitterNotifier) Notify(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("post text is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tweet, _, err := n.statuses.Update(truncate(text, MaxTweetLength), nil)
	if err != nil {
		return fmt.Errorf("failed to post tweet: %w", err)
	}

	logger.Info("Posted tweet", logger.Fields{"tweet_id": tweet.IDStr})
	return nil
}
