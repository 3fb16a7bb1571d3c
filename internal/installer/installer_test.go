package installer

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return path
}

func readRaw(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestInstallIntoMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claude", "settings.json")

	require.NoError(t, Install(path, "/opt/herald/bin"))

	status, err := Installed(path)
	require.NoError(t, err)
	for event, ok := range status {
		assert.True(t, ok, "event %s not installed", event)
	}
}

func TestInstallPreservesForeignSettings(t *testing.T) {
	path := settingsFile(t, `{
		"model": "opus",
		"hooks": {
			"Stop": [
				{"hooks": [{"type": "command", "command": "/usr/local/bin/other-tool"}]}
			]
		}
	}`)

	require.NoError(t, Install(path, "/opt/herald/bin"))

	raw := readRaw(t, path)
	assert.Equal(t, "opus", raw["model"])

	stopEntries := raw["hooks"].(map[string]any)["Stop"].([]any)
	require.Len(t, stopEntries, 2, "foreign entry must survive alongside herald's")
	assert.False(t, isHeraldEntry(stopEntries[0]))
	assert.True(t, isHeraldEntry(stopEntries[1]))
}

func TestInstallIsIdempotent(t *testing.T) {
	path := settingsFile(t, "")

	require.NoError(t, Install(path, "/opt/herald/bin"))
	require.NoError(t, Install(path, "/opt/herald/bin"))

	raw := readRaw(t, path)
	stopEntries := raw["hooks"].(map[string]any)["Stop"].([]any)
	assert.Len(t, stopEntries, 1, "reinstall must replace, not duplicate")
}

func TestUninstallRemovesOnlyHeraldEntries(t *testing.T) {
	path := settingsFile(t, `{
		"hooks": {
			"Stop": [
				{"hooks": [{"type": "command", "command": "/usr/local/bin/other-tool"}]}
			]
		}
	}`)
	require.NoError(t, Install(path, "/opt/herald/bin"))

	require.NoError(t, Uninstall(path))

	raw := readRaw(t, path)
	hooksSection := raw["hooks"].(map[string]any)
	stopEntries := hooksSection["Stop"].([]any)
	require.Len(t, stopEntries, 1)
	assert.False(t, isHeraldEntry(stopEntries[0]))

	// Events that only held herald entries are gone entirely.
	_, hasNotification := hooksSection["Notification"]
	assert.False(t, hasNotification)

	status, err := Installed(path)
	require.NoError(t, err)
	for event, ok := range status {
		assert.False(t, ok, "event %s still installed", event)
	}
}

func TestToolHooksGetWildcardMatcher(t *testing.T) {
	path := settingsFile(t, "")
	require.NoError(t, Install(path, "/opt/herald/bin"))

	raw := readRaw(t, path)
	preToolUse := raw["hooks"].(map[string]any)["PreToolUse"].([]any)
	group := preToolUse[0].(map[string]any)
	assert.Equal(t, "*", group["matcher"])

	stop := raw["hooks"].(map[string]any)["Stop"].([]any)
	_, hasMatcher := stop[0].(map[string]any)["matcher"]
	assert.False(t, hasMatcher)
}

func TestInstalledOnCorruptFileErrors(t *testing.T) {
	path := settingsFile(t, "{broken")
	_, err := Installed(path)
	assert.Error(t, err)
}
