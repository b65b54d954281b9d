// Package config resolves runtime settings from flags, FLAT_WEB_* environment
// variables and defaults, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FLAT_WEB"

// Config holds the server settings.
type Config struct {
	Addr         string
	TemplatesDir string
	PublicDir    string
	ImagesDir    string
	ImagesPrefix string
	LocalesDir   string
	ListingFile  string
	DefaultLang  string
	BaseURL      string
	Dev          bool
	LogLevel     string
	Metrics      bool
	RemoteImages []string
	Analytics    Analytics
}

// Analytics holds client instrumentation identifiers surfaced to templates.
type Analytics struct {
	GA4MeasurementID string
	GTMContainerID   string
}

func setDefaults(v *viper.Viper) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	v.SetDefault("addr", ":"+port)
	v.SetDefault("templates", "templates")
	v.SetDefault("public", "public")
	v.SetDefault("images.dir", "")
	v.SetDefault("images.prefix", "/images")
	v.SetDefault("images.remote", []string{
		"https://a0.muscache.com",
		"https://airbnb.com",
		"https://airbnb.com.br",
	})
	v.SetDefault("locales", "locales")
	v.SetDefault("listing", "")
	v.SetDefault("lang", "pt")
	v.SetDefault("base_url", "")
	v.SetDefault("dev", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics", true)
	v.SetDefault("analytics.ga4", "")
	v.SetDefault("analytics.gtm", "")
}

// Flags declares the command line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("addr", "", "HTTP listen address")
	fs.String("templates", "", "templates directory")
	fs.String("public", "", "public assets directory")
	fs.String("images-dir", "", "directory scanned for gallery photos (default <public>/images)")
	fs.String("listing", "", "listing markdown file (default: compiled-in listing)")
	fs.String("locales", "", "locales directory")
	fs.String("base-url", "", "absolute site URL used for canonical links")
	fs.Bool("dev", false, "reparse templates on every request")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Bool("metrics", true, "expose /metrics")
	return fs
}

// Load parses args into fs and merges them with the environment.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"addr":       "addr",
		"templates":  "templates",
		"public":     "public",
		"images.dir": "images-dir",
		"listing":    "listing",
		"locales":    "locales",
		"base_url":   "base-url",
		"dev":        "dev",
		"log.level":  "log-level",
		"metrics":    "metrics",
	}
	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", flag, err)
		}
	}
	// DEV is honoured as a fallback switch for local runs.
	if !v.IsSet("dev") || !v.GetBool("dev") {
		if os.Getenv("DEV") != "" {
			v.Set("dev", true)
		}
	}

	cfg := Config{
		Addr:         v.GetString("addr"),
		TemplatesDir: v.GetString("templates"),
		PublicDir:    v.GetString("public"),
		ImagesDir:    v.GetString("images.dir"),
		ImagesPrefix: v.GetString("images.prefix"),
		LocalesDir:   v.GetString("locales"),
		ListingFile:  v.GetString("listing"),
		DefaultLang:  strings.ToLower(v.GetString("lang")),
		BaseURL:      strings.TrimRight(v.GetString("base_url"), "/"),
		Dev:          v.GetBool("dev"),
		LogLevel:     v.GetString("log.level"),
		Metrics:      v.GetBool("metrics"),
		RemoteImages: v.GetStringSlice("images.remote"),
		Analytics: Analytics{
			GA4MeasurementID: v.GetString("analytics.ga4"),
			GTMContainerID:   v.GetString("analytics.gtm"),
		},
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = strings.TrimRight(cfg.PublicDir, "/") + "/images"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: addr is empty")
	}
	if !strings.HasPrefix(c.ImagesPrefix, "/") {
		return fmt.Errorf("config: images prefix %q must start with /", c.ImagesPrefix)
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("config: base url %q must be absolute", c.BaseURL)
	}
	return nil
}
