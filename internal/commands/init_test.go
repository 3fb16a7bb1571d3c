package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/installer"
)

// testRoot mirrors Execute's wiring so subcommands see the persistent
// --settings flag.
func testRoot(t *testing.T, sub *cobra.Command, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HERALD_DATA_DIR", t.TempDir())
	config.Invalidate()
	t.Cleanup(config.Invalidate)

	root := &cobra.Command{Use: "herald", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("settings", "", "")
	root.AddCommand(sub)
	root.SetArgs(args)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInitInstallsHooksAndSeedsSettings(t *testing.T) {
	claudeSettings := filepath.Join(t.TempDir(), "settings.json")
	root, out := testRoot(t, NewInitCmd(),
		"init", "--settings", claudeSettings, "--bin-dir", "/opt/herald/bin")

	require.NoError(t, root.Execute())

	status, err := installer.Installed(claudeSettings)
	require.NoError(t, err)
	for event, ok := range status {
		assert.True(t, ok, "event %s not installed", event)
	}
	assert.FileExists(t, config.SettingsPath(), "init must seed default herald settings")
	assert.Contains(t, out.String(), "Installed")
}

func TestUninstallAfterInit(t *testing.T) {
	claudeSettings := filepath.Join(t.TempDir(), "settings.json")
	root, _ := testRoot(t, NewInitCmd(),
		"init", "--settings", claudeSettings, "--bin-dir", "/opt/herald/bin")
	require.NoError(t, root.Execute())

	root, _ = testRoot(t, NewUninstallCmd(), "uninstall", "--settings", claudeSettings)
	require.NoError(t, root.Execute())

	status, err := installer.Installed(claudeSettings)
	require.NoError(t, err)
	for event, ok := range status {
		assert.False(t, ok, "event %s still installed", event)
	}
}

func TestStatusReportsMissingHooks(t *testing.T) {
	claudeSettings := filepath.Join(t.TempDir(), "settings.json")
	root, out := testRoot(t, NewStatusCmd(), "status", "--settings", claudeSettings)

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "missing")
	assert.Contains(t, out.String(), "Queue enabled")
}
