package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "mybank.yaml"

// Config represents the top-level mybank.yaml configuration.
type Config struct {
	Bank     BankConfig     `yaml:"bank"`
	Currency CurrencyConfig `yaml:"currency"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// BankConfig holds the names shown at the top of a session.
type BankConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

// CurrencyConfig controls how amounts are rendered.
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
}

// DisplayConfig controls message rendering.
type DisplayConfig struct {
	Icons bool `yaml:"icons"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a mybank.yaml file from disk. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the stock MyBank look.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Title:   "MyBank App",
			Tagline: "Secure & Simple Banking",
		},
		Currency: CurrencyConfig{
			Symbol: "₹",
		},
		Display: DisplayConfig{
			Icons: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LogLevel parses Log.Level. An empty level means warn.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
}
