//go:build linux

package notify

import "os/exec"

// playSound plays an audio file via the first available player: paplay
// (PulseAudio) then aplay (ALSA). Fire-and-forget; no player installed is
// not an error.
func playSound(file string) error {
	for _, player := range []string{"paplay", "aplay"} {
		if _, err := exec.LookPath(player); err != nil {
			continue
		}
		return exec.Command(player, file).Start()
	}
	return nil
}
