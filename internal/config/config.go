// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"annecy/internal/locale"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). An empty host disables the page cache.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	PageCacheTTL time.Duration
	RateLimit    int // requests per minute per client IP

	DefaultLocale    string
	SupportedLocales []string
}

var digits = regexp.MustCompile(`^[0-9]+$`)

// Load reads an optional .env file, then configuration from environment
// variables, applying defaults for development where appropriate.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(envOrDefault("PAGE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse PAGE_CACHE_TTL: %w", err)
	}
	rate, err := strconv.Atoi(envOrDefault("RATE_LIMIT", "120"))
	if err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT: %w", err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "annecy"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "annecy"),

		ValkeyHost:     valkeyHost(),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		PageCacheTTL: ttl,
		RateLimit:    rate,

		DefaultLocale:    strings.ToLower(envOrDefault("DEFAULT_LOCALE", "fr")),
		SupportedLocales: splitList(envOrDefault("SUPPORTED_LOCALES", "fr,en,es")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	supported := make([]any, len(c.SupportedLocales))
	for i, l := range c.SupportedLocales {
		supported[i] = l
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Match(digits)),
		validation.Field(&c.Env, validation.Required, validation.In("development", "production", "testing")),
		validation.Field(&c.DBPort, validation.Required, validation.Match(digits)),
		validation.Field(&c.PageCacheTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.RateLimit, validation.Min(0)),
		validation.Field(&c.SupportedLocales, validation.Required),
		validation.Field(&c.DefaultLocale, validation.Required, validation.In(supported...)),
		validation.Field(&c.DBPassword, validation.When(c.Env == "production",
			validation.NotIn("changeme").Error("must be set in production"))),
	)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address, or "" when the cache is disabled.
func (c *Config) ValkeyAddr() string {
	if c.ValkeyHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// LogLevel returns Debug in development and Info otherwise.
func (c *Config) LogLevel() slog.Level {
	if c.IsDev() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Locales returns the configured locale set.
func (c *Config) Locales() (locale.Locales, error) {
	return locale.New(c.DefaultLocale, c.SupportedLocales...)
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// valkeyHost defaults to localhost; VALKEY_HOST set to an empty value
// disables the cache.
func valkeyHost() string {
	if v, ok := os.LookupEnv("VALKEY_HOST"); ok {
		return v
	}
	return "localhost"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
