// Package delivery pushes a finished payload to the remote receiver.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUnexpectedStatus is returned for any non-2xx answer.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client makes a single POST per payload. Failures are returned, never retried.
type Client struct {
	http     *resty.Client
	endpoint string
	logger   *slog.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetRetryCount(0)

	return &Client{
		http:     client,
		endpoint: endpoint,
		logger:   logger,
	}
}

// Post sends payload as JSON. Only a 2xx status counts as delivered.
func (c *Client) Post(ctx context.Context, payload any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("failed to post payload to %s: %w", c.endpoint, err)
	}

	c.logger.Info("📤 POST "+c.endpoint, slog.Int("status", resp.StatusCode()))
	if !resp.IsSuccess() {
		return fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, resp.StatusCode(), c.endpoint)
	}
	return nil
}
