package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

var chatClient = &http.Client{Timeout: 15 * time.Second}

// Notify posts a short message to the chat webhook named by
// CHAT_WEBHOOK_URL. An unset webhook is not an error.
func Notify(ctx context.Context, message string) error {
	webhookURL := os.Getenv("CHAT_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := chatClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status: %s", resp.Status)
	}
	return nil
}
