package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/vango-dev/aether/app/providers/text"
)

// Config holds all configuration for the docs app.
type Config struct {
	// Server
	Port        string `validate:"required,numeric"`
	Environment string `validate:"oneof=development staging production"` // development, staging, production
	LogLevel    string `validate:"oneof=debug info warn error"`

	// Stories
	PreviewFile string

	// Text defaults established for every rendered story. Nil fields fall
	// back to text.Default().
	Text TextConfig
}

// TextConfig mirrors text.Defaults with validation rules.
type TextConfig struct {
	AllowFontScaling      *bool
	MaxFontSizeMultiplier *float64 `validate:"omitempty,gte=1"`
	AdjustsFontSizeToFit  *bool
	MinimumFontScale      *float64 `validate:"omitempty,gte=0.5,lte=1"`
}

// Load reads configuration from environment variables.
// It will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		PreviewFile: os.Getenv("PREVIEW_FILE"),
	}

	var err error
	if cfg.Text.AllowFontScaling, err = getBool("TEXT_ALLOW_FONT_SCALING"); err != nil {
		return nil, err
	}
	if cfg.Text.MaxFontSizeMultiplier, err = getFloat("TEXT_MAX_FONT_SIZE_MULTIPLIER"); err != nil {
		return nil, err
	}
	if cfg.Text.AdjustsFontSizeToFit, err = getBool("TEXT_ADJUSTS_FONT_SIZE_TO_FIT"); err != nil {
		return nil, err
	}
	if cfg.Text.MinimumFontScale, err = getFloat("TEXT_MINIMUM_FONT_SCALE"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its validation rules.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TextDefaults returns the configured text scope, or nil when nothing was
// configured so the provider default applies.
func (c *Config) TextDefaults() *text.Defaults {
	d := text.Defaults{
		AllowFontScaling:      c.Text.AllowFontScaling,
		MaxFontSizeMultiplier: c.Text.MaxFontSizeMultiplier,
		AdjustsFontSizeToFit:  c.Text.AdjustsFontSizeToFit,
		MinimumFontScale:      c.Text.MinimumFontScale,
	}
	if d.IsZero() {
		return nil
	}
	return &d
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string) (*bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return &b, nil
}

func getFloat(key string) (*float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return &f, nil
}
