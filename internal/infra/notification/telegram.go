// Package notification implements the operator-facing alerting sinks.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chainsync/internal/domain/service"
	"chainsync/internal/errors"
)

// TelegramConfig carries the bot credentials and the target chat.
type TelegramConfig struct {
	BotToken string        // Bot API token.
	ChatID   string        // Target chat or channel identifier.
	Timeout  time.Duration // Request timeout.
}

type telegramNotifier struct {
	cfg    TelegramConfig
	client *http.Client
	logger *slog.Logger
}

// NewTelegramNotifier creates a Bot-API-backed notifier.
func NewTelegramNotifier(cfg TelegramConfig, logger *slog.Logger) service.Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &telegramNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// apiResponse mirrors the Bot API envelope fields needed for error reporting.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify sends a plain-text message to the configured chat.
func (n *telegramNotifier) Notify(ctx context.Context, message string) error {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.cfg.BotToken)
	form := url.Values{
		"chat_id": {n.cfg.ChatID},
		"text":    {message},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build telegram request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call telegram API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read telegram response")
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return errors.Wrapf(err, "decode telegram response (status %d)", resp.StatusCode)
	}
	if !parsed.OK {
		return errors.Errorf("telegram rejected message: %s", parsed.Description)
	}

	n.logger.Debug("notification delivered", slog.Int("length", len(message)))

	return nil
}
