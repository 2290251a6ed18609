// Package notify delivers normalized agent events to the configured
// notification channels.
package notify

import (
	"context"

	"github.com/CosmoTheDev/agent-notify/internal/event"
)

// Channel is implemented by each notification provider.
type Channel interface {
	Name() string
	// Enabled reports whether the operator turned the channel on.
	Enabled() bool
	// Ready reports whether the channel has everything it needs to
	// deliver (credentials, tool support). An enabled channel that is
	// not ready sends as a silent no-op rather than failing.
	Ready() bool
	Send(ctx context.Context, evt event.Event) error
}

// Title renders the notification title shared by all channels.
func Title(evt event.Event) string {
	return "Agent Notifier — " + evt.Platform.Label()
}

// Body renders the notification body: the event message, or the raw event
// kind when the message is empty, prefixed with the project tag when one
// was resolved.
func Body(evt event.Event) string {
	body := evt.Message
	if body == "" {
		body = evt.Kind
	}
	if evt.Project != "" {
		body = "[" + evt.Project + "] " + body
	}
	return body
}
