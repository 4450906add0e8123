package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendFile = "file"
	BackendDB   = "db"

	DefaultTickMs = 50
	minTickMs     = 10
	maxTickMs     = 50
)

type Config struct {
	DB        DBConfig        `toml:"database"`
	State     StateConfig     `toml:"state"`
	Tick      TickConfig      `toml:"tick"`
	Log       LogConfig       `toml:"log"`
	KeepAwake KeepAwakeConfig `toml:"keep_awake"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`
}

type StateConfig struct {
	Backend string `toml:"backend"` // "file" or "db".
	Dir     string `toml:"dir"`
}

type TickConfig struct {
	IntervalMs int `toml:"interval_ms"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type KeepAwakeConfig struct {
	// Tool overrides the platform default (systemd-inhibit, caffeinate).
	// "none" disables keep-awake entirely.
	Tool string `toml:"tool"`
}

// configDir is swapped out by tests.
var configDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "chrono"), nil
}

// Returns the directory holding config, state and logs.
func Dir() (string, error) {
	if os.Getenv("DEV_MODE") == "true" {
		return ".chrono", nil
	}
	return configDir()
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		State: StateConfig{Backend: BackendFile},
		Tick:  TickConfig{IntervalMs: DefaultTickMs},
		Log:   LogConfig{Level: "info"},
	}
}

// Reads the configuration from the config file. A missing file is not an
// error; the defaults are used instead.
func LoadConfig() (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}

	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}
	if token := os.Getenv("TURSO_AUTH_TOKEN"); token != "" {
		cfg.DB.AuthToken = token
	}

	dir := filepath.Dir(path)
	if cfg.State.Dir == "" {
		cfg.State.Dir = dir
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(dir, "chrono.log")
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" && cfg.DB.ConnectionString == "" {
		cfg.DB.ConnectionString = "file:./.chrono/local.db?cache=shared&mode=rwc"
	}

	return cfg, nil
}

// LoadFrom decodes the TOML file at path on top of the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("Failed to parse config %s: %w", path, err)
	}

	cfg.State.Backend = strings.ToLower(strings.TrimSpace(cfg.State.Backend))
	if cfg.State.Backend != BackendDB {
		cfg.State.Backend = BackendFile
	}
	return cfg, nil
}

// WriteDefault writes a commented default config to path unless a file is
// already there.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("Failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("Failed to create config file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "# chrono configuration")
	fmt.Fprintln(f, "# [database] connection_string enables workout history (libsql/turso).")
	fmt.Fprintln(f, "# [state] backend is \"file\" or \"db\".")
	fmt.Fprintln(f)
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return false, fmt.Errorf("Failed to write config file: %w", err)
	}
	return true, nil
}

// TickInterval is the render sampling period, kept within 10-50ms.
func (c *Config) TickInterval() time.Duration {
	ms := c.Tick.IntervalMs
	switch {
	case ms <= 0:
		ms = DefaultTickMs
	case ms < minTickMs:
		ms = minTickMs
	case ms > maxTickMs:
		ms = maxTickMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SlogLevel maps the configured level name, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// HistoryEnabled reports whether a history database is configured.
func (c *Config) HistoryEnabled() bool {
	return c.DB.ConnectionString != ""
}
