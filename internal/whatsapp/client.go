// Package whatsapp is a minimal client for the WhatsApp Cloud API text
// message endpoint.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Calvin-222/COMP-4117-back-end/internal/metrics"
)

// DefaultBaseURL is the Graph API root the production deployment targets.
const DefaultBaseURL = "https://graph.facebook.com/v22.0"

// APIError carries the provider's error payload so the handler can
// surface it verbatim. No retries: a failed send is reported as-is.
type APIError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp: API returned status %d", e.StatusCode)
}

// Client calls the Cloud API on behalf of one business phone number.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	phoneID    string
}

// New creates a client. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL, token, phoneNumberID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		token:      token,
		phoneID:    phoneNumberID,
	}
}

type textPayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// SendText posts a text message to the given destination (digits-only,
// country-code prefixed) and returns the provider's response payload.
func (c *Client) SendText(ctx context.Context, to, body string) (json.RawMessage, error) {
	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
	}
	payload.Text.Body = body

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.WhatsAppLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Payload: respBody}
	}
	return respBody, nil
}
