// Package announce serializes spoken announcements across independently
// launched hook processes using a lock file as the only shared state.
package announce

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Lock is a cross-process mutex backed by a file whose content is the
// decimal PID of the holder. Absence of the file means unlocked. A holder
// that dies without releasing is detected by a liveness probe on the
// recorded PID and cleaned up by the next acquirer.
type Lock struct {
	path string
	pid  int
}

// NewLock creates a lock at path owned by this process.
func NewLock(path string) *Lock {
	return &Lock{path: path, pid: os.Getpid()}
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// TryAcquire makes one acquisition attempt. It returns (true, nil) on
// success, (false, nil) when another live process holds the lock, and
// (false, err) only for I/O failures that make the lock unusable. A stale
// holder is deleted and followed by exactly one immediate create retry;
// losing that retry to a third process falls back to the caller's poll
// loop rather than spinning.
func (l *Lock) TryAcquire() (bool, error) {
	ok, err := l.create()
	if ok || err != nil {
		return ok, err
	}

	holder, parseable, readErr := l.holder()
	if readErr != nil {
		// File vanished between the create attempt and the read: the lock
		// is free again, let the caller retry on its next iteration.
		return false, nil
	}

	// Unparseable content counts as stale: no liveness check is possible,
	// and leaving it in place would block every announcer until the escape
	// valve fires.
	if parseable && (holder == l.pid || pidAlive(holder)) {
		return false, nil
	}

	log.Debug().Int("holder", holder).Str("path", l.path).Msg("removing stale lock")
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return false, err
	}
	return l.create()
}

// ForceAcquire deletes the lock regardless of holder and makes one final
// create attempt. Used by the max-wait escape valve; exclusivity is
// sacrificed for liveness.
func (l *Lock) ForceAcquire() bool {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", l.path).Msg("forced lock removal failed")
		return false
	}
	ok, err := l.create()
	if err != nil {
		log.Warn().Err(err).Str("path", l.path).Msg("forced lock creation failed")
		return false
	}
	return ok
}

// Release deletes the lock only if it still names this process, so a lock
// stolen after a stale cleanup race is left alone. Idempotent: a missing
// or foreign lock file is a no-op.
func (l *Lock) Release() {
	holder, parseable, err := l.holder()
	if err != nil || !parseable || holder != l.pid {
		return
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", l.path).Msg("lock release failed")
	}
}

// create attempts the atomic create-if-absent write of our PID.
func (l *Lock) create() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return false, err
	}
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}
	_, werr := f.WriteString(strconv.Itoa(l.pid))
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(l.path)
		if werr != nil {
			return false, werr
		}
		return false, cerr
	}
	return true, nil
}

// holder reads the PID recorded in the lock file. Best-effort: the file may
// be deleted concurrently by a racing process. parseable is false when the
// file exists but does not contain a PID.
func (l *Lock) holder() (pid int, parseable bool, err error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false, err
	}
	pid, perr := strconv.Atoi(strings.TrimSpace(string(data)))
	if perr != nil {
		return 0, false, nil
	}
	return pid, true, nil
}
