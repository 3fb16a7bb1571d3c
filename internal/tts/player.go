package tts

import (
	"context"
	"fmt"
	"runtime"
)

// playerCandidates lists local audio players in preference order per
// platform. Cloud backends synthesize to a temp file and hand it to the
// first candidate present on PATH.
func playerCandidates() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"afplay"}}
	case "windows":
		return [][]string{{"powershell", "-NoProfile", "-Command"}}
	default:
		return [][]string{
			{"mpv", "--no-terminal"},
			{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
			{"paplay"},
			{"aplay", "-q"},
		}
	}
}

// findPlayer returns the playback command for this machine, or nil when no
// player is installed.
func findPlayer() []string {
	for _, candidate := range playerCandidates() {
		if _, err := lookPath(candidate[0]); err == nil {
			return candidate
		}
	}
	return nil
}

// playFile blocks until the audio file has been played.
func playFile(ctx context.Context, path string) error {
	player := findPlayer()
	if player == nil {
		return fmt.Errorf("no audio player found")
	}
	args := append(append([]string(nil), player[1:]...), playerArg(player[0], path)...)
	if err := runCmd(ctx, player[0], args...); err != nil {
		return fmt.Errorf("%s: %w", player[0], err)
	}
	return nil
}

func playerArg(player, path string) []string {
	if player == "powershell" {
		return []string{fmt.Sprintf(`(New-Object Media.SoundPlayer %s).PlaySync()`, psQuote(path))}
	}
	return []string{path}
}
