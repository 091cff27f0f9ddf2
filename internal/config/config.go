package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/validation"
)

// Config holds all configuration for the application.
type Config struct {
	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`

	// StorageDir is where the file-backed key/value store keeps its keys.
	StorageDir string `validate:"required"`
	ServerAddr string `validate:"required"`
	// StaticDir overrides the embedded assets with a directory on disk.
	StaticDir string

	ToastDuration time.Duration `validate:"gt=0"`
	MinNameLength int           `validate:"gte=1"`
	MinAge        int           `validate:"gte=0,lte=120"`
	DefaultPage   string        `validate:"oneof=home register donate"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	policy := validation.DefaultPolicy()
	return &Config{
		LogFormat:     "text",
		LogLevel:      "debug",
		StorageDir:    "data",
		ServerAddr:    ":8080",
		StaticDir:     "",
		ToastDuration: 3 * time.Second,
		MinNameLength: policy.MinNameLength,
		MinAge:        policy.MinAge,
		DefaultPage:   string(domain.PageHome),
	}
}

// New loads a .env file if present, then reads the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, falling back to Default for unset keys.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("STORAGE_DIR", &cfg.StorageDir)
	str("SERVER_ADDR", &cfg.ServerAddr)
	str("STATIC_DIR", &cfg.StaticDir)
	str("DEFAULT_PAGE", &cfg.DefaultPage)
	num("FORM_MIN_NAME_LENGTH", &cfg.MinNameLength)
	num("FORM_MIN_AGE", &cfg.MinAge)
	if v, ok := lookup("TOAST_DURATION"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TOAST_DURATION: %w", err))
		} else {
			cfg.ToastDuration = d
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %v", errs)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Policy returns the registration policy.
func (c *Config) Policy() validation.Policy {
	return validation.Policy{MinNameLength: c.MinNameLength, MinAge: c.MinAge}
}

// Page returns DefaultPage as a page key.
func (c *Config) Page() domain.PageKey {
	return domain.PageKey(c.DefaultPage)
}
