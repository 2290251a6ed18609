//go:build darwin

package notify

import "os/exec"

// playSound plays an audio file via afplay. Fire-and-forget.
func playSound(file string) error {
	return exec.Command("afplay", file).Start()
}
