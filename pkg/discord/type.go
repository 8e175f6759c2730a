package discord

import "time"

// Config holds timeout and retry settings for webhook delivery.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// DefaultConfig returns the default webhook delivery configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		RetryCount: 2,
		RetryDelay: time.Second,
	}
}

// WebhookPayload is the JSON body posted to the Discord webhook endpoint.
type WebhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}
