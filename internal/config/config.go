package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes read-only access to the application configuration.
// Handlers and modules depend on this interface rather than on *Config.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentPath() string
	GetContentWatch() bool
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string `validate:"required"`
	AppBaseURL    string `validate:"required,hostname_port|hostname"`
	SessionSecret string `validate:"required,min=16"`
	ContentPath   string
	ContentWatch  bool
	LogFormat     string `validate:"omitempty,oneof=text json"`
	LogLevel      string `validate:"omitempty,oneof=debug info warn error"`
}

const (
	defaultAddr    = ":8080"
	defaultBaseURL = "localhost:8080"
	// Only used when SESSION_SECRET is unset; never rely on it in production.
	defaultSessionSecret = "vep-development-session-secret"
)

// Load reads configuration from the environment (and an optional .env file)
// and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          getenv("APP_ADDR", defaultAddr),
		AppBaseURL:    getenv("APP_BASE_URL", defaultBaseURL),
		SessionSecret: getenv("SESSION_SECRET", defaultSessionSecret),
		ContentPath:   os.Getenv("CONTENT_PATH"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
		LogLevel:      getenv("LOG_LEVEL", "debug"),
	}

	if raw := os.Getenv("CONTENT_WATCH"); raw != "" {
		watch, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CONTENT_WATCH value %q: %w", raw, err)
		}
		cfg.ContentWatch = watch
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New loads the configuration and exits the process when it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentPath() string   { return c.ContentPath }
func (c *Config) GetContentWatch() bool    { return c.ContentWatch }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
