// Package config loads and saves the spendplan settings file and resolves
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
)

// Environment overrides.
const (
	EnvDB       = "SPENDPLAN_DB"
	EnvLogLevel = "SPENDPLAN_LOG_LEVEL"
)

// Config holds all spendplan configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig selects where planner data lives.
type StorageConfig struct {
	Path         string `toml:"path,omitempty"`
	DefaultStore string `toml:"default_store"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Theme    string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{DefaultStore: string(store.Local)},
		Display: DisplayConfig{Currency: money.BRL.Code, Theme: "flexoki-dark"},
		Log:     LogConfig{Level: "warn"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendplan")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LogPath is where the TUI writes its log.
func LogPath() string {
	return filepath.Join(ConfigDir(), "spendplan.log")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spendplan")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := store.ParseKind(c.Storage.DefaultStore); err != nil {
		return fmt.Errorf("storage.default_store: %w", err)
	}
	if _, ok := money.CurrencyByCode(c.Display.Currency); !ok {
		return fmt.Errorf("display.currency: unsupported currency %q", c.Display.Currency)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return nil
}

// DBPath returns the SQLite file location from env var, config or the
// default, in that order.
func DBPath(cfg Config) string {
	if p := os.Getenv(EnvDB); p != "" {
		return p
	}
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path
	}
	return filepath.Join(DataDir(), "spendplan.db")
}

// LogLevel returns the log level from env var or config, in that order.
func LogLevel(cfg Config) string {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		return lvl
	}
	return cfg.Log.Level
}

// Currency returns the configured display currency, falling back to BRL.
func Currency(cfg Config) money.Currency {
	if c, ok := money.CurrencyByCode(cfg.Display.Currency); ok {
		return c
	}
	return money.BRL
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
