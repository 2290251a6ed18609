package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
)

// Dispatcher fans one event out to every enabled channel concurrently.
// Each channel gets exactly one attempt; failures are isolated per channel
// and written to the diagnostic stream, never returned to the caller.
type Dispatcher struct {
	channels []Channel

	mu     sync.Mutex
	stderr io.Writer
}

// NewDispatcher builds a Dispatcher from the channel configuration.
// Disabled channels are filtered out here; unknown channel names never
// reach this point because config decoding drops them.
func NewDispatcher(cfg config.ChannelsConfig) *Dispatcher {
	all := []Channel{
		NewSound(cfg.Sound),
		NewMacOS(cfg.MacOS),
		NewTelegram(cfg.Telegram),
		NewEmail(cfg.Email),
		NewSlack(cfg.Slack),
		NewDiscord(cfg.Discord),
	}
	d := &Dispatcher{stderr: os.Stderr}
	for _, ch := range all {
		if ch.Enabled() {
			d.channels = append(d.channels, ch)
		}
	}
	return d
}

// Channels returns the enabled channels, in registration order.
func (d *Dispatcher) Channels() []Channel {
	return d.channels
}

// Dispatch delivers evt to all enabled channels and returns once every
// attempt has finished. With zero enabled channels it returns immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, evt event.Event) {
	if len(d.channels) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, ch := range d.channels {
		wg.Add(1)
		go func(ch Channel) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					d.fail(ch.Name(), fmt.Errorf("panic: %v", r))
				}
			}()
			slog.Debug("dispatching", "channel", ch.Name(), "platform", evt.Platform, "kind", evt.Kind)
			if err := ch.Send(ctx, evt); err != nil {
				d.fail(ch.Name(), err)
			}
		}(ch)
	}
	wg.Wait()
}

// fail writes the one-line diagnostic for a failed channel. Delivery is
// best-effort, so this is the only visible trace of a failure.
func (d *Dispatcher) fail(name string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.stderr, "[agent-notify] %s failed: %v\n", name, err)
}
