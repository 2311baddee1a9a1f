package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sha1n/sitesearch/internal/content"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// SupportedLangs lists the language codes records can be built for.
var SupportedLangs = []string{"en"}

// CollectionSettings holds the glob patterns selecting each collection,
// relative to the content directory.
type CollectionSettings struct {
	Posts       string `mapstructure:"posts"`
	Authors     string `mapstructure:"authors"`
	Newsletters string `mapstructure:"newsletters"`
	Tags        string `mapstructure:"tags"`
}

// Settings application settings
type Settings struct {
	ContentDir    string             `mapstructure:"content_dir"`
	Output        string             `mapstructure:"output"`
	BaseURL       string             `mapstructure:"base_url"`
	Lang          string             `mapstructure:"lang"`
	MaxFulltext   int                `mapstructure:"max_fulltext"`
	IncludeDrafts bool               `mapstructure:"include_drafts"`
	LogLevel      string             `mapstructure:"log_level"`
	Collections   CollectionSettings `mapstructure:"collections"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("content_dir", "content")
	v.SetDefault("output", "search-records.json")
	v.SetDefault("base_url", "")
	v.SetDefault("lang", "en")
	v.SetDefault("max_fulltext", 7500)
	v.SetDefault("include_drafts", false)
	v.SetDefault("log_level", LogLevelInfo)

	// Collection globs
	v.SetDefault("collections.posts", "posts/**/*.md")
	v.SetDefault("collections.authors", "authors/*.md")
	v.SetDefault("collections.newsletters", "newsletters/**/*.md")
	v.SetDefault("collections.tags", "tags/*.md")

	// Environment variables
	v.SetEnvPrefix("SITE_SEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("collections.posts", "SITE_SEARCH_COLLECTIONS_POSTS")
	_ = v.BindEnv("collections.authors", "SITE_SEARCH_COLLECTIONS_AUTHORS")
	_ = v.BindEnv("collections.newsletters", "SITE_SEARCH_COLLECTIONS_NEWSLETTERS")
	_ = v.BindEnv("collections.tags", "SITE_SEARCH_COLLECTIONS_TAGS")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("content_dir", flags.Lookup("content-dir"))
		_ = v.BindPFlag("output", flags.Lookup("output"))
		_ = v.BindPFlag("base_url", flags.Lookup("base-url"))
		_ = v.BindPFlag("lang", flags.Lookup("lang"))
		_ = v.BindPFlag("max_fulltext", flags.Lookup("max-fulltext"))
		_ = v.BindPFlag("include_drafts", flags.Lookup("include-drafts"))
		_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	settings.ContentDir = expandHomeDir(strings.TrimSpace(settings.ContentDir))
	if settings.Output != "-" {
		settings.Output = expandHomeDir(strings.TrimSpace(settings.Output))
	}
	settings.BaseURL = strings.TrimSpace(settings.BaseURL)
	settings.Lang = strings.ToLower(strings.TrimSpace(settings.Lang))
	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))

	return &settings, nil
}

// expandHomeDir expands ~ to the user's home directory
func expandHomeDir(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, p[2:])
	}
	if p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return home
	}
	return p
}

// ValidateSettings checks for missing or out-of-range values.
func ValidateSettings(s *Settings) error {
	if s.ContentDir == "" {
		return errors.New("content-dir cannot be empty")
	}

	if s.Output == "" {
		return errors.New("output cannot be empty")
	}

	if !slices.Contains(SupportedLangs, s.Lang) {
		return fmt.Errorf("lang must be one of %v, got: %s", SupportedLangs, s.Lang)
	}

	if s.MaxFulltext <= 0 {
		return errors.New("max-fulltext must be positive")
	}

	switch s.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// valid
	default:
		return errors.New("log-level must be one of debug, info, warn, error, got: " + s.LogLevel)
	}

	if err := validateCollectionSettings(&s.Collections); err != nil {
		return err
	}

	return nil
}

// validateCollectionSettings validates the collection glob patterns
func validateCollectionSettings(c *CollectionSettings) error {
	globs := []struct {
		name    string
		pattern string
	}{
		{"collections.posts", c.Posts},
		{"collections.authors", c.Authors},
		{"collections.newsletters", c.Newsletters},
		{"collections.tags", c.Tags},
	}

	for _, g := range globs {
		if g.pattern == "" {
			return fmt.Errorf("%s cannot be empty", g.name)
		}
		if err := content.ValidateGlob(g.pattern); err != nil {
			return fmt.Errorf("%s is not a valid glob: %s", g.name, g.pattern)
		}
	}

	return nil
}
