// Package config resolves where the task file lives and how the CLI behaves.
//
// Values are layered: built-in defaults, then an optional config.yaml in the
// data directory, then environment variables. Command-line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName   = "tasks.json"
	DefaultConfigName = "config.yaml"
	DefaultLogLevel   = "warn"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	appQualifier    = "com"
	appOrganization = "todo"
	appName         = "todo-cli"
)

type Config struct {
	// DataDir is empty when no platform data directory could be resolved;
	// FilePath then falls back to DefaultFileName in the working directory.
	DataDir    string
	FilePath   string
	ConfigPath string
	LogLevel   string
	Color      string
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	File     string `yaml:"file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	Color    string `yaml:"color,omitempty"`
}

type env struct {
	goos    string
	getenv  func(string) string
	homeDir func() (string, error)
}

func Load() (Config, error) {
	return load(env{
		goos:    runtime.GOOS,
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
	})
}

func load(e env) (Config, error) {
	cfg := Config{
		LogLevel: DefaultLogLevel,
		Color:    ColorAuto,
	}

	cfg.DataDir = getEnv(e, "TODO_DATA_DIR", "")
	if cfg.DataDir == "" {
		if dir, err := dataDir(e); err == nil {
			cfg.DataDir = dir
		}
	}

	if cfg.DataDir != "" {
		cfg.FilePath = filepath.Join(cfg.DataDir, DefaultFileName)
		cfg.ConfigPath = filepath.Join(cfg.DataDir, DefaultConfigName)
	} else {
		cfg.FilePath = DefaultFileName
	}
	cfg.ConfigPath = getEnv(e, "TODO_CONFIG", cfg.ConfigPath)

	if cfg.ConfigPath != "" {
		if err := cfg.applyFile(cfg.ConfigPath); err != nil {
			return cfg, err
		}
	}

	cfg.FilePath = getEnv(e, "TODO_FILE", cfg.FilePath)
	cfg.LogLevel = getEnv(e, "TODO_LOG_LEVEL", cfg.LogLevel)
	if e.getenv("NO_COLOR") != "" {
		cfg.Color = ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.File != "" {
		c.FilePath = fc.File
		if !filepath.IsAbs(c.FilePath) && c.DataDir != "" {
			c.FilePath = filepath.Join(c.DataDir, c.FilePath)
		}
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Color != "" {
		c.Color = fc.Color
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: want %s, %s or %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.FilePath == "" {
		return errors.New("task file path is empty")
	}
	return nil
}

// EnsureDir creates the directory holding the task file.
func (c Config) EnsureDir() error {
	dir := filepath.Dir(c.FilePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return nil
}

// dataDir returns the per-user application data directory for this tool.
func dataDir(e env) (string, error) {
	switch e.goos {
	case "windows":
		if appData := e.getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appOrganization, appName, "data"), nil
		}
		return "", errors.New("APPDATA is not set")
	case "darwin":
		home, err := e.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", appQualifier+"."+appOrganization+"."+appName), nil
	default:
		if xdg := e.getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
			return filepath.Join(xdg, appName), nil
		}
		home, err := e.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
}

func getEnv(e env, key, def string) string {
	if v := e.getenv(key); v != "" {
		return v
	}
	return def
}
