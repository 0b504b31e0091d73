// Package discord delivers rendered messages to Discord webhook endpoints.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hookline/hookline/models"
)

// Response is one per-recipient delivery outcome. A plain webhook endpoint
// yields exactly one.
type Response struct {
	StatusCode int
	Body       string
}

// Client executes Discord webhooks over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with a sane request timeout.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{Timeout: 10 * time.Second}}
}

type embedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type embed struct {
	Author      embedAuthor `json:"author"`
	Title       string      `json:"title"`
	URL         string      `json:"url,omitempty"`
	Description string      `json:"description,omitempty"`
	Color       int         `json:"color"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// Execute posts msg to the webhook endpoint and returns the normalized list
// of per-recipient responses. `wait=true` makes Discord return the created
// message (200) instead of a bare 204, so failures carry a body.
func (c *Client) Execute(ctx context.Context, endpoint string, msg models.Message) ([]Response, error) {
	payload := webhookPayload{Embeds: []embed{{
		Author: embedAuthor{
			Name:    msg.AuthorName,
			URL:     msg.AuthorURL,
			IconURL: msg.AuthorIconURL,
		},
		Title:       msg.Title,
		URL:         msg.URL,
		Description: msg.Description,
		Color:       hexColor(msg.Color),
	}}}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?wait=true", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req) // #nosec G107 -- endpoint is an operator-configured Discord webhook URL
	if err != nil {
		return nil, fmt.Errorf("executing webhook: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return []Response{{StatusCode: resp.StatusCode, Body: string(body)}}, nil
}

// hexColor converts a 6-hex-digit color string to Discord's integer form.
// An unparsable value falls back to 0 rather than failing delivery.
func hexColor(s string) int {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}
