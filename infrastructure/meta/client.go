package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AzielCF/wa-cloud-bridge/config"
	pkgError "github.com/AzielCF/wa-cloud-bridge/pkg/error"
	"github.com/sirupsen/logrus"
)

// Client talks to the WhatsApp Cloud API (Graph) messages endpoint.
// It never interprets the platform's verdict: status code and decoded
// body are handed back untouched for the caller to judge.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	cfg := config.Global
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Whatsapp.RequestTimeout},
		baseURL:    cfg.Whatsapp.GraphBaseURL,
	}
}

// NewClientWithBaseURL points the client at a different Graph host,
// used by tests.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// SendText posts an individual text message, threaded onto the inbound
// message via context.message_id. Field names and nesting mirror the
// published Cloud API contract exactly.
func (c *Client) SendText(ctx context.Context, to, message, contextMessageID string) (int, map[string]any, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "text",
		"context": map[string]any{
			"message_id": contextMessageID,
		},
		"text": map[string]any{
			"preview_url": false,
			"body":        message,
		},
	}
	return c.post(ctx, config.Global.Whatsapp.SendAPIVersion, payload)
}

// MarkAsRead flags the inbound message as read.
func (c *Client) MarkAsRead(ctx context.Context, messageID string) (int, map[string]any, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        messageID,
	}
	return c.post(ctx, config.Global.Whatsapp.StatusAPIVersion, payload)
}

// TypingIndicator shows the composing indicator to the sender. The Cloud
// API piggybacks this on the read-status call.
func (c *Client) TypingIndicator(ctx context.Context, messageID string) (int, map[string]any, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        messageID,
		"typing_indicator": map[string]any{
			"type": "text",
		},
	}
	return c.post(ctx, config.Global.Whatsapp.StatusAPIVersion, payload)
}

func (c *Client) post(ctx context.Context, version string, payload map[string]any) (int, map[string]any, error) {
	cfg := config.Global.Whatsapp
	if cfg.PhoneNumberID == "" {
		return 0, nil, pkgError.ConfigError("PHONE_NUMBER_ID not found in environment variables")
	}
	if cfg.AccessToken == "" {
		return 0, nil, pkgError.ConfigError("WHATSAPP_ACCESS_TOKEN not found in environment variables")
	}

	url := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, version, cfg.PhoneNumberID)

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, pkgError.InternalError(fmt.Sprintf("failed to marshal request body: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, pkgError.InternalError(fmt.Sprintf("failed to build request: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, pkgError.UpstreamError(fmt.Sprintf("cloud api request failed: %v", err))
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		// The platform answers JSON; anything else still surfaces the
		// status code with an empty body.
		logrus.WithError(err).Debugf("[META] non-JSON response body (status %d)", resp.StatusCode)
		decoded = map[string]any{}
	}

	return resp.StatusCode, decoded, nil
}
