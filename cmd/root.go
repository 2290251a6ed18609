package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
	"github.com/CosmoTheDev/agent-notify/internal/notify"
	"github.com/CosmoTheDev/agent-notify/internal/project"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

// rootCmd runs in hook mode: agent platforms invoke the bare binary with a
// JSON payload on stdin (or, for Aider, a plain message as arguments).
// ArbitraryArgs lets that message text through without cobra rejecting it.
var rootCmd = &cobra.Command{
	Use:   "agent-notify [message...]",
	Short: "Relay AI coding-agent hook events to notification channels",
	Long: `agent-notify is invoked as a lifecycle hook by AI coding agents
(Claude Code, GitHub Copilot CLI, Cursor, Codex, OpenCode, Aider). It reads
the hook payload from stdin, recognizes which platform sent it, and fans the
event out to every enabled notification channel concurrently.

Operator commands:
  agent-notify doctor    Verify configuration and channel readiness
  agent-notify test      Send a test notification
  agent-notify config    Show the effective configuration`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHook,
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.claude/notify-config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		doctorCmd,
		testCmd,
		configCmd,
		versionCmd,
	)
}

// versionCmd exists alongside the --version flag: without it a literal
// "agent-notify version" would fall into hook mode and dispatch a bogus
// notification.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agent-notify %s\n", Version)
	},
}

func initConfig() {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}
}

// runHook is total: whatever happens, the hook exits 0 so the invoking
// agent's own hook chain never fails because of the notifier.
func runHook(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ev := event.Normalize(readStdin(), args)
	if forced, ok := event.ParsePlatform(os.Getenv("AGENT_NOTIFY_PLATFORM")); ok {
		slog.Debug("platform forced via environment", "platform", forced)
		ev.Platform = forced
	}
	ev.Project = project.Resolve(ctx, ev.Workdir)

	slog.Debug("normalized event",
		"platform", ev.Platform,
		"kind", ev.Kind,
		"project", ev.Project)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		slog.Warn("config unreadable, using defaults", "error", err)
		cfg = config.Default()
	}

	notify.NewDispatcher(cfg.Channels).Dispatch(ctx, ev)
	return nil
}

// readStdin returns the piped payload bytes, or nil when stdin is a
// terminal (interactive invocation, argument fallback applies).
func readStdin() []byte {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil
	}
	return raw
}
