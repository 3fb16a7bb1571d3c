package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch invalidates the settings cache whenever the settings file changes on
// disk, so a long-lived process (the web UI) sees external edits immediately.
// It blocks until ctx is cancelled. Editors replace files via rename, so the
// watch is on the parent directory rather than the file itself.
func Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := EnsureDataDir(); err != nil {
		return err
	}
	if err := watcher.Add(DataDir()); err != nil {
		return err
	}

	target := filepath.Base(SettingsPath())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Msg("settings file changed, invalidating cache")
			Invalidate()
			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("settings watcher error")
		}
	}
}
