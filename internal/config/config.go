package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/cache"
	"github.com/mobil-koeln/crtm-cli/internal/card"
)

// Config holds client and CLI settings
type Config struct {
	BaseURL        string        `yaml:"base_url" validate:"required,url"`
	CardServiceURL string        `yaml:"card_service_url" validate:"required,url"`
	Timeout        time.Duration `yaml:"timeout" validate:"gt=0"`
	Cache          CacheConfig   `yaml:"cache"`
	Log            LogConfig     `yaml:"log"`
	MetricsAddr    string        `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
}

// CacheConfig controls the on-disk response cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl" validate:"gt=0"`
	Dir     string        `yaml:"dir" validate:"required"`
}

// LogConfig controls logging
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		BaseURL:        api.BaseURL,
		CardServiceURL: card.ServiceURL,
		Timeout:        10 * time.Second,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     90 * time.Second,
			Dir:     cache.DefaultCacheDir(),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/crtm/config.yml, falling back to ~/.config
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "crtm", "config.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "crtm", "config.yml")
}

// LoadDotEnv loads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the YAML file at path and
// CRTM_* environment variables, in that order. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
// The result is not validated; callers apply their overrides and then Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.BaseURL, "CRTM_BASE_URL")
	setString(&c.CardServiceURL, "CRTM_CARD_SERVICE_URL")
	setString(&c.Cache.Dir, "CRTM_CACHE_DIR")
	setString(&c.Log.Level, "CRTM_LOG_LEVEL")
	setString(&c.Log.File, "CRTM_LOG_FILE")
	setString(&c.MetricsAddr, "CRTM_METRICS_ADDR")

	if err := setDuration(&c.Timeout, "CRTM_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&c.Cache.TTL, "CRTM_CACHE_TTL"); err != nil {
		return err
	}
	if v := os.Getenv("CRTM_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRTM_CACHE: %w", err)
		}
		c.Cache.Enabled = b
	}
	return nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
