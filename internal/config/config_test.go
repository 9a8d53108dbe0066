package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(goos string, vars map[string]string, home string) env {
	return env{
		goos: goos,
		getenv: func(key string) string {
			return vars[key]
		},
		homeDir: func() (string, error) {
			if home == "" {
				return "", errors.New("no home")
			}
			return home, nil
		},
	}
}

func TestDataDir(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		vars    map[string]string
		home    string
		want    string
		wantErr bool
	}{
		{
			name: "linux home",
			goos: "linux",
			home: "/home/ann",
			want: filepath.Join("/home/ann", ".local", "share", "todo-cli"),
		},
		{
			name: "linux xdg",
			goos: "linux",
			vars: map[string]string{"XDG_DATA_HOME": "/data"},
			home: "/home/ann",
			want: filepath.Join("/data", "todo-cli"),
		},
		{
			name: "relative xdg ignored",
			goos: "linux",
			vars: map[string]string{"XDG_DATA_HOME": "data"},
			home: "/home/ann",
			want: filepath.Join("/home/ann", ".local", "share", "todo-cli"),
		},
		{
			name: "darwin",
			goos: "darwin",
			home: "/Users/ann",
			want: filepath.Join("/Users/ann", "Library", "Application Support", "com.todo.todo-cli"),
		},
		{
			name: "windows",
			goos: "windows",
			vars: map[string]string{"APPDATA": "C:/Users/ann/AppData/Roaming"},
			want: filepath.Join("C:/Users/ann/AppData/Roaming", "todo", "todo-cli", "data"),
		},
		{
			name:    "windows without appdata",
			goos:    "windows",
			wantErr: true,
		},
		{
			name:    "no home",
			goos:    "linux",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dataDir(testEnv(tt.goos, tt.vars, tt.home))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := load(testEnv("linux", nil, home))

	require.NoError(t, err)
	wantDir := filepath.Join(home, ".local", "share", "todo-cli")
	assert.Equal(t, wantDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(wantDir, DefaultFileName), cfg.FilePath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_FallbackWithoutHome(t *testing.T) {
	cfg, err := load(testEnv("linux", nil, ""))

	require.NoError(t, err)
	assert.Empty(t, cfg.DataDir)
	assert.Equal(t, DefaultFileName, cfg.FilePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()

	cfg, err := load(testEnv("linux", map[string]string{
		"TODO_DATA_DIR":  dir,
		"TODO_FILE":      "/elsewhere/todo.json",
		"TODO_LOG_LEVEL": "debug",
		"NO_COLOR":       "1",
	}, ""))

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "/elsewhere/todo.json", cfg.FilePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigName), []byte(
		"file: work.json\nlog_level: info\ncolor: always\n",
	), 0o644))

	cfg, err := load(testEnv("linux", map[string]string{"TODO_DATA_DIR": dir}, ""))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "work.json"), cfg.FilePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigName), []byte("log_level: info\n"), 0o644))

	cfg, err := load(testEnv("linux", map[string]string{
		"TODO_DATA_DIR":  dir,
		"TODO_LOG_LEVEL": "error",
	}, ""))

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "file: [unterminated\n"},
		{name: "bad color", content: "color: rainbow\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigName), []byte(tt.content), 0o644))

			_, err := load(testEnv("linux", map[string]string{"TODO_DATA_DIR": dir}, ""))

			assert.Error(t, err)
		})
	}
}

func TestConfig_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	cfg := Config{FilePath: filepath.Join(dir, DefaultFileName), Color: ColorAuto}

	require.NoError(t, cfg.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfig_EnsureDirFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg := Config{FilePath: filepath.Join(blocker, "sub", DefaultFileName)}

	assert.Error(t, cfg.EnsureDir())
}
