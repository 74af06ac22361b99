package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoutkit/internal/ui/preferences"
)

const testApp = "LayoutKitTest"

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	useTempConfig(t)

	settings, err := LoadSettings(testApp)

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	useTempConfig(t)
	want := preferences.Settings{
		DestinationPath: "/data/out",
		ProjectsPath:    "/data/projects",
		TemplatePath:    "/data/templates/base.kind",
		Profile:         "option2",
		DateFormat:      "2006-01-02",
	}

	require.NoError(t, SaveSettings(testApp, want))
	got, err := LoadSettings(testApp)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettings_BlankAndUnknownFieldsKeepDefaults(t *testing.T) {
	dir := useTempConfig(t)
	configPath, err := resolveConfigPath(testApp)
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(configPath))
	require.Contains(t, configPath, dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte("destination_path: \"  \"\nprojects_path: /p\nprofile: option9\ndate_format: dd/mm/y\n"), 0o644))

	settings, err := LoadSettings(testApp)

	require.NoError(t, err)
	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.DestinationPath, settings.DestinationPath)
	assert.Equal(t, "/p", settings.ProjectsPath)
	assert.Equal(t, "", settings.Profile)
	assert.Equal(t, defaults.DateFormat, settings.DateFormat)
}

func TestLoadSettings_InvalidYaml(t *testing.T) {
	useTempConfig(t)
	configPath, err := resolveConfigPath(testApp)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte("profile: [unclosed"), 0o644))

	settings, err := LoadSettings(testApp)

	assert.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettings_DateFormat(t *testing.T) {
	useTempConfig(t)
	configPath, err := resolveConfigPath(testApp)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte("date_format: \"Jan 2, 2006\"\n"), 0o644))

	settings, err := LoadSettings(testApp)

	require.NoError(t, err)
	assert.Equal(t, "Jan 2, 2006", settings.DateFormat)
	assert.Equal(t, "Jan 2, 2006", settings.LayoutForm().DateFormat)
}
