package stanza

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a stanza site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	Addr       string `mapstructure:"addr"`       // Listen address (default ":3000")
	ContentDir string `mapstructure:"contentDir"` // Markdown content directory (default "content")
	StaticDir  string `mapstructure:"staticDir"`  // Static assets directory (default "static")
	OutputDir  string `mapstructure:"outputDir"`  // Static build output directory (default "public")
	CachePath  string `mapstructure:"cachePath"`  // SQLite render cache path (default "data/render.db")

	AdminPassword string `mapstructure:"adminPassword"` // Required in serve mode: admin login password
	SessionSecret string `mapstructure:"sessionSecret"` // Required in serve mode: session encryption secret
	CookieSecure  bool   `mapstructure:"cookieSecure"`  // Set true for HTTPS

	ScanTTL time.Duration `mapstructure:"scanTTL"` // Content scan cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.CachePath == "" {
		c.CachePath = "data/render.db"
	}
	if c.ScanTTL == 0 {
		c.ScanTTL = 5 * time.Minute
	}
}

// LoadConfig reads site configuration from the given YAML file (or
// ./config.yaml when path is empty). STANZA_-prefixed environment variables
// override file values, so secrets like STANZA_ADMINPASSWORD never have to
// live in the file. A missing default config file is not an error.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()

	// Register every key so env lookups work even when the key is absent
	// from the config file. AutomaticEnv only resolves keys viper knows.
	v.SetDefault("name", "Blog")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("cachePath", "data/render.db")
	v.SetDefault("adminPassword", "")
	v.SetDefault("sessionSecret", "")
	v.SetDefault("cookieSecure", false)
	v.SetDefault("scanTTL", 5*time.Minute)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("STANZA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// An explicit path goes through SetConfigFile, which reports a
		// missing file as a path error, not ConfigFileNotFoundError.
		if path != "" {
			if os.IsNotExist(err) {
				return SiteConfig{}, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
