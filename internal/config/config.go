// Package config loads quill settings from defaults, an optional YAML file,
// QUILL_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/renato0307/quill/internal/logging"
	"github.com/renato0307/quill/internal/messages"
)

// EnvPrefix is the prefix of environment overrides (QUILL_THEME, QUILL_LOG_LEVEL, ...).
const EnvPrefix = "QUILL"

// Config holds all quill settings.
type Config struct {
	Theme       string    `mapstructure:"theme"`
	Placeholder string    `mapstructure:"placeholder"`
	CatalogFile string    `mapstructure:"catalog_file"` // YAML command catalog; empty = built-in
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig configures the log file.
type LogConfig struct {
	File       string `mapstructure:"file"` // empty disables logging
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Defaults
const (
	DefaultTheme       = "charm"
	DefaultPlaceholder = "Ask a question..."
)

// New returns a viper instance with quill defaults and env binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("placeholder", DefaultPlaceholder)
	v.SetDefault("catalog_file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultDir returns the directory searched for config.yaml.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill")
}

// Load reads the config file into v and decodes the result.
// An explicit path must exist; the default location is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := DefaultDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, messages.WrapError(err, "failed to read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, messages.WrapError(err, "failed to decode config")
	}

	return &cfg, nil
}

// Logging converts the log section into a logging.Config.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
