package notifier

import (
	"fmt"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
)

// TwitterSender posts digest messages as status updates.
type TwitterSender struct {
	client *twitter.Client
}

// NewTwitterSender creates a Twitter sender using environment variables.
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterSender() (*TwitterSender, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterSender{client: twitter.NewClient(httpClient)}, nil
}

// Send posts the text as a status update, truncating to the platform's
// 280-character limit.
func (s *TwitterSender) Send(text string) error {
	if len(text) > 280 {
		text = text[:277] + "..."
	}

	_, _, err := s.client.Statuses.Update(text, nil)
	if err != nil {
		return fmt.Errorf("posting status: %w", err)
	}
	return nil
}
