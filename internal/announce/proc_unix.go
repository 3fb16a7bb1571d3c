//go:build unix

package announce

import (
	"errors"
	"syscall"
)

// pidAlive reports whether a process with the given PID exists, via the
// zero-signal probe. EPERM means the process exists but belongs to another
// user, which still counts as alive.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
