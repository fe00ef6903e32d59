package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDataDir holds notes.db and the TUI log
	DefaultDataDir  = "~/.local/share/noted"
	DefaultLogLevel = "info"
	DefaultEditor   = "vi"

	EnvDataDir  = "NOTED_DATA_DIR"
	EnvLogLevel = "NOTED_LOG_LEVEL"
)

// Config holds the user settings shared by every binary
type Config struct {
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
	Editor   string `yaml:"editor"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Editor:   defaultEditor(),
	}
}

// Load reads defaults, then the YAML file at Path(), then the environment.
// A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit config file path
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv(EnvDataDir); env != "" {
		cfg.DataDir = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		cfg.LogLevel = env
	}

	cfg.DataDir = ExpandHome(cfg.DataDir)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from path into the environment. Variables
// already set are kept and a missing file is ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// Path returns $XDG_CONFIG_HOME/noted/config.yaml
func Path() string {
	return filepath.Join(xdgConfig(), "noted", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func xdgConfig() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

func defaultEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	return DefaultEditor
}
