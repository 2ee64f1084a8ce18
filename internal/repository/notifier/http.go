package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/version"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// errUnexpectedStatus is returned for non-2xx responses.
var errUnexpectedStatus = errors.New("unexpected status")

// message is the sendMessage request body.
type message struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Client posts chat messages.
type Client struct {
	// httpClient performs requests.
	httpClient *http.Client
	// endpoint receives the POST.
	endpoint string
	// chatID is the recipient chat.
	chatID string
	// text is the override message.
	text string
}

// NewClient creates a notifier posting text to chatID at endpoint.
func NewClient(endpoint, chatID, text string) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		chatID:     chatID,
		text:       text,
	}
}

// NotifyOverride posts the override message. The actor, when known, is appended to the text.
func (c *Client) NotifyOverride(ctx context.Context, actor *geofence.Actor) error {
	text := c.text
	if actor != nil && actor.Username != "" {
		text = fmt.Sprintf("%s (%s@%s)", text, actor.Username, actor.Hostname)
	}

	body, err := json.Marshal(&message{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("%w: HTTP %d: %s", errUnexpectedStatus, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	return nil
}
