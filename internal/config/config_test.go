package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func isolateConfigRoot(t *testing.T) {
	t.Helper()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	isolateConfigRoot(t)

	cfg, used, err := LoadMerged(Options{
		IgnoreConfig: true,
		DefaultURL:   "https://example.com/archive/123",
		Top:          5,
	})
	require.NoError(t, err)
	require.Equal(t, "(ignored config)", used)
	require.Equal(t, "https://example.com/archive/123", cfg.DefaultURL)
	require.Equal(t, 5, cfg.Top)
	require.Equal(t, 30, cfg.TimeoutSeconds)
	require.Equal(t, "csv", cfg.ExportFormat)
}

func TestLoadMergedNoProfileFallsBackToDefaults(t *testing.T) {
	isolateConfigRoot(t)

	cfg, _, err := LoadMerged(Options{})
	require.NoError(t, err)
	require.Equal(t, *DefaultConfig(), *cfg)
}

func TestProfileLifecycle(t *testing.T) {
	isolateConfigRoot(t)

	defPath, err := InitDefaultProfile()
	require.NoError(t, err)

	label, err := CurrentProfile()
	require.NoError(t, err)
	require.Equal(t, "Default", label)

	// a field change in the active profile survives a round trip
	cfg, err := loadYAML(defPath)
	require.NoError(t, err)
	cfg.DefaultURL = "https://example.com/archive/456"
	require.NoError(t, SaveYAML(cfg, defPath))

	merged, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	require.Equal(t, defPath, used)
	require.Equal(t, "https://example.com/archive/456", merged.DefaultURL)

	// second profile, switch, list
	_, err = CreateProfile("mirror")
	require.NoError(t, err)
	require.NoError(t, SwitchProfile("mirror"))

	list, err := ListProfiles()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Default", list[0].Label)
	require.False(t, list[0].Active)
	require.Equal(t, "mirror", list[1].Label)
	require.True(t, list[1].Active)

	// removing the active profile falls back to Default
	require.NoError(t, RemoveProfile("mirror"))
	label, err = CurrentProfile()
	require.NoError(t, err)
	require.Equal(t, "Default", label)
}

func TestRenameProfileFollowsActive(t *testing.T) {
	isolateConfigRoot(t)

	_, err := InitDefaultProfile()
	require.NoError(t, err)

	_, err = CreateProfile("old")
	require.NoError(t, err)
	require.NoError(t, SwitchProfile("old"))

	require.NoError(t, RenameProfile("old", "new"))

	label, err := CurrentProfile()
	require.NoError(t, err)
	require.Equal(t, "new", label)
}

func TestRemoveDefaultRefused(t *testing.T) {
	isolateConfigRoot(t)

	_, err := InitDefaultProfile()
	require.NoError(t, err)

	require.Error(t, RemoveProfile("Default"))
}
