package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
)

// TelegramChannel sends notifications via the Telegram Bot API.
type TelegramChannel struct {
	cfg     config.TelegramConfig
	client  *http.Client
	apiBase string
}

// NewTelegram creates a TelegramChannel from cfg.
func NewTelegram(cfg config.TelegramConfig) *TelegramChannel {
	return &TelegramChannel{
		cfg:     cfg,
		client:  &http.Client{Timeout: 5 * time.Second},
		apiBase: "https://api.telegram.org",
	}
}

func (t *TelegramChannel) Name() string  { return "telegram" }
func (t *TelegramChannel) Enabled() bool { return t.cfg.Enabled }
func (t *TelegramChannel) Ready() bool   { return t.cfg.BotToken != "" && t.cfg.ChatID != "" }

func (t *TelegramChannel) Send(ctx context.Context, evt event.Event) error {
	if !t.Ready() {
		return nil
	}
	text := fmt.Sprintf("*%s*\n%s", Title(evt), Body(evt))
	payload := map[string]any{
		"chat_id":    t.cfg.ChatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req) // #nosec G107 -- URL is the Telegram API base plus the operator's bot token
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram API returned %d", resp.StatusCode)
	}
	return nil
}
