//go:build !darwin

package notify

// sendDesktopAlert is a no-op outside macOS; Ready() already reports the
// channel as unavailable there.
func sendDesktopAlert(title, body string) error { return nil }
