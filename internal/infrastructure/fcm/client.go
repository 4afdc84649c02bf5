package fcm

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging. A client with no credentials is
// valid but disabled, so alerting is always optional.
type Client struct {
	client *messaging.Client
	logger zerolog.Logger
}

// NewClient initializes FCM from FIREBASE_CREDENTIALS_PATH or an inline
// FIREBASE_CREDENTIALS_JSON. Missing credentials disable push alerts
// rather than failing startup.
func NewClient(ctx context.Context) (*Client, error) {
	logger := log.With().Str("component", "fcm").Logger()

	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		if credJSON == "" {
			logger.Warn().Msg("no firebase credentials, push alerts disabled")
			return &Client{logger: logger}, nil
		}

		tmpFile, err := os.CreateTemp("", "firebase-credentials-*.json")
		if err != nil {
			return nil, fmt.Errorf("creating credentials temp file: %w", err)
		}
		defer tmpFile.Close()
		if _, err := tmpFile.Write([]byte(credJSON)); err != nil {
			return nil, fmt.Errorf("writing credentials: %w", err)
		}
		credPath = tmpFile.Name()
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting messaging client: %w", err)
	}

	logger.Info().Msg("firebase cloud messaging initialized")
	return &Client{client: client, logger: logger}, nil
}

// IsEnabled reports whether credentials were configured.
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// SendMulticast pushes a notification to every registered device token.
func (c *Client) SendMulticast(tokens []string, title, body string, data map[string]string) error {
	if !c.IsEnabled() {
		return fmt.Errorf("fcm client not initialized")
	}
	if len(tokens) == 0 {
		return nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "scan_alerts",
				Priority:  messaging.PriorityHigh,
			},
		},
	}

	resp, err := c.client.SendEachForMulticast(context.Background(), message)
	if err != nil {
		return fmt.Errorf("sending multicast: %w", err)
	}
	if resp.FailureCount > 0 {
		c.logger.Warn().
			Int("failed", resp.FailureCount).
			Int("succeeded", resp.SuccessCount).
			Msg("partial multicast delivery")
	}
	return nil
}
