package notify

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
)

// stubChannel is a controllable Channel for dispatcher tests.
type stubChannel struct {
	name string
	send func(ctx context.Context, evt event.Event) error
}

func (s *stubChannel) Name() string  { return s.name }
func (s *stubChannel) Enabled() bool { return true }
func (s *stubChannel) Ready() bool   { return true }
func (s *stubChannel) Send(ctx context.Context, evt event.Event) error {
	return s.send(ctx, evt)
}

func testEvent() event.Event {
	return event.Event{Platform: event.PlatformClaudeCode, Kind: "idle_prompt", Message: "done"}
}

func TestDispatch_IsolatesFailures(t *testing.T) {
	t.Parallel()

	var delivered atomic.Int32
	ok := func(context.Context, event.Event) error {
		delivered.Add(1)
		return nil
	}

	var buf bytes.Buffer
	d := &Dispatcher{
		channels: []Channel{
			&stubChannel{name: "a", send: ok},
			&stubChannel{name: "b", send: func(context.Context, event.Event) error {
				return errors.New("boom")
			}},
			&stubChannel{name: "c", send: ok},
		},
		stderr: &buf,
	}

	d.Dispatch(context.Background(), testEvent())

	assert.Equal(t, int32(2), delivered.Load())
	assert.Equal(t, "[agent-notify] b failed: boom\n", buf.String())
}

func TestDispatch_RecoversChannelPanic(t *testing.T) {
	t.Parallel()

	var delivered atomic.Int32
	var buf bytes.Buffer
	d := &Dispatcher{
		channels: []Channel{
			&stubChannel{name: "wild", send: func(context.Context, event.Event) error {
				panic("unexpected")
			}},
			&stubChannel{name: "tame", send: func(context.Context, event.Event) error {
				delivered.Add(1)
				return nil
			}},
		},
		stderr: &buf,
	}

	require.NotPanics(t, func() { d.Dispatch(context.Background(), testEvent()) })
	assert.Equal(t, int32(1), delivered.Load())
	assert.Contains(t, buf.String(), "[agent-notify] wild failed: panic: unexpected")
}

func TestDispatch_ZeroChannels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := &Dispatcher{stderr: &buf}
	d.Dispatch(context.Background(), testEvent())
	assert.Empty(t, buf.String())
}

func TestNewDispatcher_FiltersDisabled(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(config.ChannelsConfig{
		Sound:   config.SoundConfig{Enabled: true, File: "/nonexistent.aiff"},
		Slack:   config.SlackConfig{Enabled: true, WebhookURL: "https://hooks.example/x"},
		Discord: config.DiscordConfig{Enabled: false, WebhookURL: "https://discord.example/x"},
	})

	names := make([]string, 0, len(d.Channels()))
	for _, ch := range d.Channels() {
		names = append(names, ch.Name())
	}
	assert.Equal(t, []string{"sound", "slack"}, names)
}

func TestTitle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Agent Notifier — Claude Code", Title(testEvent()))
	assert.Equal(t, "Agent Notifier — AI Agent",
		Title(event.Event{Platform: event.PlatformUnknown}))
}

func TestBody(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "done", Body(testEvent()))

	// Empty message falls back to the event kind.
	assert.Equal(t, "sessionEnd", Body(event.Event{Kind: "sessionEnd"}))

	// A resolved project is prefixed as a bracketed tag.
	evt := testEvent()
	evt.Project = "widget-factory"
	assert.Equal(t, "[widget-factory] done", Body(evt))
}
