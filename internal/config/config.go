package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data     DataConfig
	Database DatabaseConfig
	UI       UIConfig
	Session  SessionConfig
}

// DataConfig points at the on-disk lexicon material.
type DataConfig struct {
	Dir      string `mapstructure:"dir"`       // directory holding lang_*.csv files
	WordsDir string `mapstructure:"words_dir"` // directory of per-word TOML metadata, optional
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	Migrations string `mapstructure:"migrations"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SeedText     string `mapstructure:"seed_text"`
	DefaultPanes int    `mapstructure:"default_panes"`
}

// SessionConfig controls snapshot persistence.
type SessionConfig struct {
	Restore bool `mapstructure:"restore"`
}

// Load reads configuration from file and env. Env var overrides use prefix TRANSCRIBER_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.words_dir", "")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "transcriber", "transcriber.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("ui.seed_text", "mi sona e ni.")
	v.SetDefault("ui.default_panes", 2)
	v.SetDefault("session.restore", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TRANSCRIBER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "transcriber"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TRANSCRIBER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Honors the same TRANSCRIBER_CONFIG override as Load.
func Save(cfg Config) error {
	path := os.Getenv("TRANSCRIBER_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "transcriber", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("data.dir", cfg.Data.Dir)
	v.Set("data.words_dir", cfg.Data.WordsDir)
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("ui.seed_text", cfg.UI.SeedText)
	v.Set("ui.default_panes", cfg.UI.DefaultPanes)
	v.Set("session.restore", cfg.Session.Restore)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
