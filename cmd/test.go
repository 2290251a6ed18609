package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
	"github.com/CosmoTheDev/agent-notify/internal/notify"
	"github.com/CosmoTheDev/agent-notify/internal/project"
)

var testCmd = &cobra.Command{
	Use:   "test [message...]",
	Short: "Send a test notification through all enabled channels",
	Args:  cobra.ArbitraryArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	msg := strings.Join(args, " ")
	if msg == "" {
		msg = "Test notification from agent-notify"
	}

	ev := event.Event{
		Platform: event.PlatformUnknown,
		Kind:     "test",
		Message:  msg,
		Project:  project.Resolve(ctx, ""),
	}

	d := notify.NewDispatcher(cfg.Channels)
	if len(d.Channels()) == 0 {
		fmt.Println("No channels enabled — nothing to send.")
		return nil
	}

	d.Dispatch(ctx, ev)
	fmt.Printf("Dispatched to %d channel(s). Failures, if any, are listed above.\n", len(d.Channels()))
	return nil
}
