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

// DiscordChannel sends notifications to a Discord webhook.
type DiscordChannel struct {
	cfg    config.DiscordConfig
	client *http.Client
}

// NewDiscord creates a DiscordChannel from cfg.
func NewDiscord(cfg config.DiscordConfig) *DiscordChannel {
	return &DiscordChannel{cfg: cfg, client: &http.Client{Timeout: 5 * time.Second}}
}

func (d *DiscordChannel) Name() string  { return "discord" }
func (d *DiscordChannel) Enabled() bool { return d.cfg.Enabled }
func (d *DiscordChannel) Ready() bool   { return d.cfg.WebhookURL != "" }

func (d *DiscordChannel) Send(ctx context.Context, evt event.Event) error {
	if !d.Ready() {
		return nil
	}
	payload := map[string]any{
		"content": fmt.Sprintf("**%s**\n%s", Title(evt), Body(evt)),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.WebhookURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req) // #nosec G107 -- WebhookURL is an operator-configured Discord webhook
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned %d", resp.StatusCode)
	}
	return nil
}
