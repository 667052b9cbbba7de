// Package config loads termfolio settings from defaults, an optional YAML config file,
// .env files and TERMFOLIO_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"termfolio/internal/activation"
	"termfolio/internal/history"
	"termfolio/internal/storage"
)

// EnvPrefix is prepended to every environment variable override, so the key
// network.joke_url is read from TERMFOLIO_NETWORK_JOKE_URL.
const EnvPrefix = "TERMFOLIO"

// AppName names the per-user config directory.
const AppName = "termfolio"

// DefaultJokeURL returns setup/punchline jokes as JSON.
const DefaultJokeURL = "https://official-joke-api.appspot.com/random_joke"

// Config is the resolved termfolio configuration.
type Config struct {
	Prompt         string
	RecallCapacity int
	MarkdownStyle  string
	Activation     ActivationConfig
	Storage        StorageConfig
	Network        NetworkConfig
	Profile        ProfileConfig

	// File is the config file that was read, empty when none was found.
	File string
}

// ActivationConfig controls the secret key sequence that opens the console.
type ActivationConfig struct {
	Sequence []string
	Mode     activation.Mode
}

// StorageConfig selects the key/value store backend.
type StorageConfig struct {
	Driver string
	Path   string
}

// NetworkConfig bounds the commands that call public APIs.
type NetworkConfig struct {
	Timeout       time.Duration
	JokeURL       string
	RatePerMinute int
}

// ProfileConfig is the portfolio owner's information.
type ProfileConfig struct {
	Name  string
	Title string
	About string
	Links map[string]string
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// TestMode skips .env files and the per-user config file so runs are reproducible.
	TestMode bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prompt", "guest@termfolio:~$ ")
	v.SetDefault("recall_capacity", history.DefaultRecallCapacity)
	v.SetDefault("markdown.style", "")
	v.SetDefault("activation.sequence", []string{})
	v.SetDefault("activation.mode", activation.ModeRolling.String())
	v.SetDefault("storage.driver", storage.DriverMemory)
	v.SetDefault("storage.path", "")
	v.SetDefault("network.timeout", "10s")
	v.SetDefault("network.joke_url", DefaultJokeURL)
	v.SetDefault("network.rate_per_minute", 10)
	v.SetDefault("profile.name", "")
	v.SetDefault("profile.title", "")
	v.SetDefault("profile.about", "")
	v.SetDefault("profile.links", map[string]string{})
}

// Load resolves the configuration held by v. Flags bound to v before the call
// take precedence over everything else.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	SetDefaults(v)

	if !opts.TestMode {
		if err := LoadDotEnv(dotEnvPaths()...); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	file, err := readConfigFile(v, opts)
	if err != nil {
		return nil, err
	}

	mode, err := activation.ParseMode(v.GetString("activation.mode"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Prompt:         v.GetString("prompt"),
		RecallCapacity: v.GetInt("recall_capacity"),
		MarkdownStyle:  v.GetString("markdown.style"),
		Activation: ActivationConfig{
			Sequence: v.GetStringSlice("activation.sequence"),
			Mode:     mode,
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage.driver")),
			Path:   v.GetString("storage.path"),
		},
		Network: NetworkConfig{
			Timeout:       v.GetDuration("network.timeout"),
			JokeURL:       v.GetString("network.joke_url"),
			RatePerMinute: v.GetInt("network.rate_per_minute"),
		},
		Profile: ProfileConfig{
			Name:  v.GetString("profile.name"),
			Title: v.GetString("profile.title"),
			About: v.GetString("profile.about"),
			Links: v.GetStringMapString("profile.links"),
		},
		File: file,
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePath(cfg.Storage.Driver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.RecallCapacity <= 0 {
		return fmt.Errorf("recall_capacity must be positive, got %d", c.RecallCapacity)
	}
	for _, code := range c.Activation.Sequence {
		if strings.TrimSpace(code) == "" {
			return errors.New("activation.sequence contains an empty key code")
		}
	}
	switch c.Storage.Driver {
	case storage.DriverMemory:
	case storage.DriverFile, storage.DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (memory, file or sqlite)", c.Storage.Driver)
	}
	if c.Network.Timeout <= 0 {
		return fmt.Errorf("network.timeout must be positive, got %s", c.Network.Timeout)
	}
	if c.Network.RatePerMinute < 0 {
		return fmt.Errorf("network.rate_per_minute must not be negative, got %d", c.Network.RatePerMinute)
	}
	return nil
}

// LoadDotEnv loads each .env file that exists into the process environment.
// Variables already set are not overridden; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load .env file %s: %w", path, err)
		}
	}
	return nil
}

// Dir returns the per-user config directory, e.g. ~/.config/termfolio.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

func readConfigFile(v *viper.Viper, opts Options) (string, error) {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
		return v.ConfigFileUsed(), nil
	}
	if opts.TestMode {
		return "", nil
	}

	dir, err := Dir()
	if err != nil {
		// No config directory means no config file, not a failure
		return "", nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// dotEnvPaths lists the user-level .env file first so a local .env can add to it.
func dotEnvPaths() []string {
	var paths []string
	if dir, err := Dir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	return append(paths, ".env")
}

func defaultStoragePath(driver string) string {
	var name string
	switch driver {
	case storage.DriverFile:
		name = "store.json"
	case storage.DriverSQLite:
		name = "store.db"
	default:
		return ""
	}
	dir, err := Dir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}
