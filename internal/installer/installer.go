// Package installer wires herald's hook binaries into the coding
// assistant's settings file and removes them again. It only ever touches
// herald's own entries; everything else in the file is preserved.
package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// hookEvents maps herald binary names to the assistant's hook event names.
var hookEvents = map[string]string{
	"stop":               "Stop",
	"subagent-stop":      "SubagentStop",
	"notification":       "Notification",
	"session-start":      "SessionStart",
	"session-end":        "SessionEnd",
	"pre-compact":        "PreCompact",
	"pre-tool-use":       "PreToolUse",
	"post-tool-use":      "PostToolUse",
	"user-prompt-submit": "UserPromptSubmit",
}

// binaryPrefix marks commands as herald-owned so uninstall can find them.
const binaryPrefix = "herald-hook-"

// DefaultSettingsPath returns the assistant settings file location.
func DefaultSettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", "settings.json")
}

// HookNames returns the hook binary names in stable order.
func HookNames() []string {
	names := make([]string, 0, len(hookEvents))
	for name := range hookEvents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BinaryName returns the installed binary name for a hook.
func BinaryName(hook string) string {
	return binaryPrefix + hook
}

// Install merges herald hook entries into the settings file at path,
// pointing at binaries under binDir. Existing herald entries are replaced;
// all other settings keys and foreign hook entries are left untouched.
func Install(path, binDir string) error {
	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	hooksSection, _ := settings["hooks"].(map[string]any)
	if hooksSection == nil {
		hooksSection = make(map[string]any)
	}

	for name, event := range hookEvents {
		command := filepath.Join(binDir, BinaryName(name))
		entries := withoutHeraldEntries(hooksSection[event])
		group := map[string]any{
			"hooks": []any{
				map[string]any{"type": "command", "command": command},
			},
		}
		if event == "PreToolUse" || event == "PostToolUse" {
			group["matcher"] = "*"
		}
		hooksSection[event] = append(entries, group)
	}
	settings["hooks"] = hooksSection

	return writeSettings(path, settings)
}

// Uninstall removes every herald hook entry from the settings file.
// Missing file or section is a no-op.
func Uninstall(path string) error {
	settings, err := readSettings(path)
	if err != nil {
		return err
	}
	hooksSection, _ := settings["hooks"].(map[string]any)
	if hooksSection == nil {
		return nil
	}

	for _, event := range hookEvents {
		entries := withoutHeraldEntries(hooksSection[event])
		if len(entries) == 0 {
			delete(hooksSection, event)
			continue
		}
		hooksSection[event] = entries
	}
	settings["hooks"] = hooksSection

	return writeSettings(path, settings)
}

// Installed reports, per hook event, whether a herald entry is present.
func Installed(path string) (map[string]bool, error) {
	status := make(map[string]bool, len(hookEvents))
	for _, event := range hookEvents {
		status[event] = false
	}

	settings, err := readSettings(path)
	if err != nil {
		return nil, err
	}
	hooksSection, _ := settings["hooks"].(map[string]any)
	if hooksSection == nil {
		return status, nil
	}

	for _, event := range hookEvents {
		entries, _ := hooksSection[event].([]any)
		for _, entry := range entries {
			if isHeraldEntry(entry) {
				status[event] = true
				break
			}
		}
	}
	return status, nil
}

func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, err
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if settings == nil {
		settings = make(map[string]any)
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// withoutHeraldEntries filters herald-owned matcher groups out of an event's
// entry list.
func withoutHeraldEntries(v any) []any {
	entries, _ := v.([]any)
	kept := make([]any, 0, len(entries))
	for _, entry := range entries {
		if !isHeraldEntry(entry) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func isHeraldEntry(entry any) bool {
	group, _ := entry.(map[string]any)
	inner, _ := group["hooks"].([]any)
	for _, h := range inner {
		m, _ := h.(map[string]any)
		if command, _ := m["command"].(string); strings.Contains(command, binaryPrefix) {
			return true
		}
	}
	return false
}
