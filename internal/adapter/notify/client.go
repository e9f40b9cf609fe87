package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
)

// Client delivers user-facing notifications to an external sink.
// Delivery is fire-and-forget from the caller's point of view: errors
// are reported but must never affect business state.
type Client interface {
	Notify(ctx context.Context, userID int64, title, message, actionURL string) error
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// event mirrors the JSON payload accepted by the notification sink.
type event struct {
	EventID   string `json:"event_id"`
	UserID    int64  `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ActionURL string `json:"action_url,omitempty"`
}

// NewHTTPClient creates an HTTP notification client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notifier url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notifier url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Notify posts one notification event. The event id lets the sink
// deduplicate retried deliveries.
func (c *HTTPClient) Notify(ctx context.Context, userID int64, title, message, actionURL string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/notifications")

	payload, err := json.Marshal(event{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		ActionURL: actionURL,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("notification request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
	return fmt.Errorf("notifier error: %s", resp.Status)
}

// NopClient drops every notification. Used when no sink is configured.
type NopClient struct{}

func (NopClient) Notify(context.Context, int64, string, string, string) error { return nil }
