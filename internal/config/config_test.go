package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/activation"
	"termfolio/internal/history"
	"termfolio/internal/storage"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), Options{TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, "guest@termfolio:~$ ", cfg.Prompt)
	assert.Equal(t, history.DefaultRecallCapacity, cfg.RecallCapacity)
	assert.Empty(t, cfg.Activation.Sequence)
	assert.Equal(t, activation.ModeRolling, cfg.Activation.Mode)
	assert.Equal(t, storage.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 10*time.Second, cfg.Network.Timeout)
	assert.Equal(t, DefaultJokeURL, cfg.Network.JokeURL)
	assert.Equal(t, 10, cfg.Network.RatePerMinute)
	assert.Empty(t, cfg.File)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
prompt: "ada> "
recall_capacity: 5
activation:
  sequence: [KeyA, KeyD, KeyA]
  mode: strict
storage:
  driver: sqlite
  path: /tmp/termfolio-test.db
network:
  timeout: 2s
  rate_per_minute: 3
profile:
  name: Ada
  title: Engineer
  links:
    github: https://github.com/ada
`)

	cfg, err := Load(viper.New(), Options{ConfigFile: path, TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "ada> ", cfg.Prompt)
	assert.Equal(t, 5, cfg.RecallCapacity)
	assert.Equal(t, []string{"KeyA", "KeyD", "KeyA"}, cfg.Activation.Sequence)
	assert.Equal(t, activation.ModeStrict, cfg.Activation.Mode)
	assert.Equal(t, storage.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/termfolio-test.db", cfg.Storage.Path)
	assert.Equal(t, 2*time.Second, cfg.Network.Timeout)
	assert.Equal(t, 3, cfg.Network.RatePerMinute)
	assert.Equal(t, "Ada", cfg.Profile.Name)
	assert.Equal(t, map[string]string{"github": "https://github.com/ada"}, cfg.Profile.Links)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "prompt: \"file> \"\nprofile:\n  name: File\n")
	t.Setenv("TERMFOLIO_PROMPT", "env> ")
	t.Setenv("TERMFOLIO_NETWORK_JOKE_URL", "http://localhost/joke")

	cfg, err := Load(viper.New(), Options{ConfigFile: path, TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, "env> ", cfg.Prompt)
	assert.Equal(t, "http://localhost/joke", cfg.Network.JokeURL)
	assert.Equal(t, "File", cfg.Profile.Name)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), Options{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"), TestMode: true})
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero recall capacity", "recall_capacity: 0\n"},
		{"unknown mode", "activation:\n  mode: sometimes\n"},
		{"unknown driver", "storage:\n  driver: redis\n"},
		{"negative rate", "network:\n  rate_per_minute: -1\n"},
		{"zero timeout", "network:\n  timeout: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.yaml", tt.content)
			_, err := Load(viper.New(), Options{ConfigFile: path, TestMode: true})
			assert.Error(t, err)
		})
	}
}

func TestLoad_DefaultStoragePath(t *testing.T) {
	path := writeFile(t, "config.yaml", "storage:\n  driver: file\n")

	cfg, err := Load(viper.New(), Options{ConfigFile: path, TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, "store.json", filepath.Base(cfg.Storage.Path))
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "TERMFOLIO_DOTENV_LOADED=from-file\nTERMFOLIO_DOTENV_KEEP=from-file\n")
	t.Setenv("TERMFOLIO_DOTENV_KEEP", "from-env")
	t.Cleanup(func() { os.Unsetenv("TERMFOLIO_DOTENV_LOADED") })

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))

	assert.Equal(t, "from-file", os.Getenv("TERMFOLIO_DOTENV_LOADED"))
	assert.Equal(t, "from-env", os.Getenv("TERMFOLIO_DOTENV_KEEP"))
}
