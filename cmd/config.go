package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/agent-notify/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View the agent-notify configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (secrets redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		// Redact secrets.
		if cfg.Channels.Telegram.BotToken != "" {
			cfg.Channels.Telegram.BotToken = "tg-***"
		}
		if cfg.Channels.Email.Password != "" {
			cfg.Channels.Email.Password = "***"
		}
		if cfg.Channels.Slack.WebhookURL != "" {
			cfg.Channels.Slack.WebhookURL = "https://***"
		}
		if cfg.Channels.Discord.WebhookURL != "" {
			cfg.Channels.Discord.WebhookURL = "https://***"
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.Path(cfgFile))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd)
}
