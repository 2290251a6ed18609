package notify

import (
	"context"
	"os"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
)

// SoundChannel plays a local notification sound through the OS audio
// player. Playback is fire-and-forget: the player process is launched and
// not waited on.
type SoundChannel struct {
	cfg config.SoundConfig
}

// NewSound creates a SoundChannel from cfg.
func NewSound(cfg config.SoundConfig) *SoundChannel {
	return &SoundChannel{cfg: cfg}
}

func (s *SoundChannel) Name() string  { return "sound" }
func (s *SoundChannel) Enabled() bool { return s.cfg.Enabled }

func (s *SoundChannel) Ready() bool {
	if s.cfg.File == "" {
		return false
	}
	_, err := os.Stat(s.cfg.File)
	return err == nil
}

func (s *SoundChannel) Send(_ context.Context, _ event.Event) error {
	if !s.Ready() {
		return nil
	}
	return playSound(s.cfg.File)
}
