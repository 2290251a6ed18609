//go:build !darwin && !linux

package notify

// playSound is a no-op on platforms without a supported audio player.
func playSound(string) error { return nil }
