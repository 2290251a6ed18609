package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/notify"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify configuration, channels, and local delivery tools",
	Long: `Checks that the configuration parses, reports which channels are
enabled and whether each has the fields it needs to deliver, and verifies
the local playback/alert tools for this OS are available.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	allOK := true

	fmt.Println("=== agent-notify doctor ===")
	fmt.Println()

	fmt.Print("Config ................... ")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("FAIL (%s)\n", err)
		cfg = config.Default()
		allOK = false
	} else if path := config.Path(cfgFile); fileExists(path) {
		fmt.Printf("OK (%s)\n", path)
	} else {
		fmt.Println("OK (no file found, using built-in defaults)")
	}

	channels := notify.NewDispatcher(cfg.Channels).Channels()
	if len(channels) == 0 {
		fmt.Println("Channels ................. WARN (no channels enabled)")
		allOK = false
	}
	for _, ch := range channels {
		fmt.Printf("Channel %-15s... ", ch.Name())
		if ch.Ready() {
			fmt.Println("OK")
		} else {
			fmt.Println("WARN (enabled but missing required fields — will no-op)")
		}
	}

	fmt.Print("Local tools .............. ")
	if missing := missingLocalTools(); len(missing) > 0 {
		fmt.Printf("WARN (not found: %v)\n", missing)
	} else {
		fmt.Println("OK")
	}

	fmt.Println()
	if !allOK {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

// missingLocalTools reports which of this OS's playback/alert binaries are
// absent from PATH. On Linux either audio player is sufficient.
func missingLocalTools() []string {
	var missing []string
	switch runtime.GOOS {
	case "darwin":
		for _, tool := range []string{"afplay", "osascript"} {
			if _, err := exec.LookPath(tool); err != nil {
				missing = append(missing, tool)
			}
		}
	case "linux":
		if _, err := exec.LookPath("paplay"); err != nil {
			if _, err := exec.LookPath("aplay"); err != nil {
				missing = append(missing, "paplay/aplay")
			}
		}
	}
	return missing
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
