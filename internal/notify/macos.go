package notify

import (
	"context"
	"runtime"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
)

// MacOSChannel posts a macOS notification-centre alert via osascript.
// On every other OS it is a no-op, so the channel can stay enabled in a
// config that is shared across machines.
type MacOSChannel struct {
	cfg config.MacOSConfig
}

// NewMacOS creates a MacOSChannel from cfg.
func NewMacOS(cfg config.MacOSConfig) *MacOSChannel {
	return &MacOSChannel{cfg: cfg}
}

func (m *MacOSChannel) Name() string  { return "macos_notification" }
func (m *MacOSChannel) Enabled() bool { return m.cfg.Enabled }
func (m *MacOSChannel) Ready() bool   { return runtime.GOOS == "darwin" }

func (m *MacOSChannel) Send(_ context.Context, evt event.Event) error {
	if !m.Ready() {
		return nil
	}
	return sendDesktopAlert(Title(evt), Body(evt))
}
