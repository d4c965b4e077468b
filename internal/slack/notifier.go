package slack

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Notifier delivers text messages to a Slack incoming webhook. Delivery is
// best-effort at-most-once: failures are logged and never escalated.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewNotifier creates a Notifier. An empty webhook URL disables delivery.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts a message to the webhook and reports whether delivery
// succeeded. A missing webhook URL is a warning, not an error.
func (n *Notifier) Send(message string) bool {
	if n.webhookURL == "" {
		slog.Warn("Slack webhook URL is not configured, skipping notification")
		return false
	}

	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		slog.Error("failed to encode Slack payload", "error", err)
		return false
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Error("failed to send Slack notification", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Slack notification rejected", "status", resp.StatusCode)
		return false
	}

	slog.Info("Slack notification sent")
	return true
}
