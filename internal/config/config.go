// Package config loads basket settings from defaults, an optional
// basket.yaml and BASKET_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Service ServiceConfig `mapstructure:"service"`
	Share   ShareConfig   `mapstructure:"share"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

// StoreConfig picks where the shopping list lives.
type StoreConfig struct {
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	Key      string `mapstructure:"key"`
	MaxBytes int    `mapstructure:"max_bytes"`
}

// ServiceConfig points at the recipe and substitution endpoints.
type ServiceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ShareConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// HomeDir is where basket keeps its data and optional config file.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".basket"
	}
	return filepath.Join(home, ".basket")
}

// Load reads configuration. An explicit path must exist; without one a
// missing basket.yaml is fine.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("basket")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(HomeDir())
	}

	v.SetEnvPrefix("BASKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.path", HomeDir())
	v.SetDefault("store.key", "recipeAppShoppingListData")
	v.SetDefault("store.max_bytes", 5<<20)

	v.SetDefault("service.base_url", "http://localhost:5000")
	v.SetDefault("service.timeout", "60s")
	v.SetDefault("share.base_url", "http://localhost:5000")
	v.SetDefault("export.dir", ".")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("ui.theme", "classic")
}

// Validate rejects settings the program cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("store.backend must be file or sqlite, got %q", c.Store.Backend)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path is required")
	}
	if strings.TrimSpace(c.Store.Key) == "" {
		return errors.New("store.key is required")
	}
	if c.Store.MaxBytes <= 0 {
		return errors.New("store.max_bytes must be positive")
	}
	if c.Service.Timeout <= 0 {
		return errors.New("service.timeout must be positive")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
