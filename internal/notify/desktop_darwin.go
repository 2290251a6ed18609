//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// sendDesktopAlert shows a notification-centre alert. Fire-and-forget.
// %q quoting keeps embedded quotes in the message from breaking out of
// the AppleScript string.
func sendDesktopAlert(title, body string) error {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	return exec.Command("osascript", "-e", script).Start()
}
