package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{
		"channels": {
			"sound": {"enabled": false},
			"telegram": {"enabled": true, "bot_token": "tok", "chat_id": "42"},
			"slack": {"enabled": true, "webhook_url": "https://hooks.slack.example/x"}
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Channels.Sound.Enabled)
	assert.True(t, cfg.Channels.Telegram.Enabled)
	assert.Equal(t, "tok", cfg.Channels.Telegram.BotToken)
	assert.Equal(t, "42", cfg.Channels.Telegram.ChatID)
	assert.Equal(t, "https://hooks.slack.example/x", cfg.Channels.Slack.WebhookURL)
	// Defaults fill fields the file does not set.
	assert.Equal(t, DefaultSoundFile, cfg.Channels.Sound.File)
	assert.Equal(t, 587, cfg.Channels.Email.SMTPPort)
}

func TestLoad_MissingExplicitFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.True(t, cfg.Channels.Sound.Enabled)
	assert.True(t, cfg.Channels.MacOS.Enabled)
	assert.False(t, cfg.Channels.Telegram.Enabled)
	assert.False(t, cfg.Channels.Slack.Enabled)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{"channels": `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownChannelsDropped(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{
		"channels": {
			"carrier_pigeon": {"enabled": true},
			"discord": {"enabled": true, "webhook_url": "https://discord.example/wh"}
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Channels.Discord.Enabled)
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	assert.True(t, cfg.Channels.Sound.Enabled)
	assert.Equal(t, DefaultSoundFile, cfg.Channels.Sound.File)
	assert.True(t, cfg.Channels.MacOS.Enabled)
	assert.False(t, cfg.Channels.Email.Enabled)
}

func TestPath_OverrideWins(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/tmp/custom.json", Path("/tmp/custom.json"))
}
