package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ExpandHome(DefaultDataDir), cfg.DataDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFile_YAML(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, "data_dir: /srv/notes\nlog_level: DEBUG\neditor: nano\n")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "nano", cfg.Editor)
}

func TestLoadFile_EnvironmentWins(t *testing.T) {
	path := writeConfig(t, "data_dir: /srv/notes\nlog_level: debug\n")
	t.Setenv(EnvDataDir, "/tmp/elsewhere")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "data_dir: [unterminated\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestPath_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	assert.Equal(t, filepath.Join("/cfg", "noted", "config.yaml"), Path())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: home},
		{in: "~/notes", want: filepath.Join(home, "notes")},
		{in: "/abs/path", want: "/abs/path"},
		{in: "~user/notes", want: "~user/notes"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOTED_TEST_DOTENV=loaded\nNOTED_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv(EnvLogLevel, "warn")
	t.Cleanup(func() { os.Unsetenv("NOTED_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("NOTED_TEST_DOTENV"))
	assert.Equal(t, "warn", os.Getenv(EnvLogLevel), "existing variables win")

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
