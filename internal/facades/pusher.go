package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cambiove/exchange-api/internal/logger"
)

// HTTPPusher delivers push notifications to registered device tokens through
// an HTTP push gateway.
type HTTPPusher struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPPusher creates a pusher for the given gateway endpoint.
func NewHTTPPusher(endpoint, apiKey string, client *http.Client) *HTTPPusher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPPusher{endpoint: endpoint, apiKey: apiKey, client: client}
}

type pushPayload struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Push sends a notification to one device token.
func (p *HTTPPusher) Push(ctx context.Context, deviceToken, title, body string) error {
	data, err := json.Marshal(pushPayload{To: deviceToken, Title: title, Body: body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Log.Errorw("push notification failed", "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Log.Errorw("push gateway rejected notification", "status", resp.StatusCode)
		return fmt.Errorf("push gateway status %d", resp.StatusCode)
	}

	logger.Log.Infow("push notification sent")
	return nil
}
