package config

// Config is the root of notify-config.json.
type Config struct {
	Channels ChannelsConfig `mapstructure:"channels" json:"channels"`
}

// ChannelsConfig holds the per-channel settings. Channel names in the
// config file that this struct does not know about are dropped during
// decoding, which is how unknown channels are silently ignored.
type ChannelsConfig struct {
	Sound    SoundConfig    `mapstructure:"sound" json:"sound"`
	MacOS    MacOSConfig    `mapstructure:"macos_notification" json:"macos_notification"`
	Telegram TelegramConfig `mapstructure:"telegram" json:"telegram"`
	Email    EmailConfig    `mapstructure:"email" json:"email"`
	Slack    SlackConfig    `mapstructure:"slack" json:"slack"`
	Discord  DiscordConfig  `mapstructure:"discord" json:"discord"`
}

// SoundConfig configures the local sound channel.
type SoundConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	File    string `mapstructure:"file" json:"file"`
}

// MacOSConfig configures the macOS notification-centre channel.
type MacOSConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// TelegramConfig configures delivery via the Telegram Bot API.
type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	BotToken string `mapstructure:"bot_token" json:"bot_token"`
	ChatID   string `mapstructure:"chat_id" json:"chat_id"`
}

// EmailConfig configures delivery via SMTP.
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	SMTPHost string `mapstructure:"smtp_host" json:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port" json:"smtp_port"`
	Username string `mapstructure:"username" json:"username"`
	Password string `mapstructure:"password" json:"password"`
	FromAddr string `mapstructure:"from_addr" json:"from_addr"`
	ToAddr   string `mapstructure:"to_addr" json:"to_addr"`
}

// SlackConfig configures a Slack incoming webhook.
type SlackConfig struct {
	Enabled    bool   `mapstructure:"enabled" json:"enabled"`
	WebhookURL string `mapstructure:"webhook_url" json:"webhook_url"`
}

// DiscordConfig configures a Discord webhook.
type DiscordConfig struct {
	Enabled    bool   `mapstructure:"enabled" json:"enabled"`
	WebhookURL string `mapstructure:"webhook_url" json:"webhook_url"`
}
