package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret        string `env:"JWT_SECRET_KEY,required" validate:"required,min=32"`
	JWTAlgorithm     string `env:"JWT_ALGORITHM"           envDefault:"HS256" validate:"oneof=HS256 HS384 HS512"`
	JWTExpirationSec int    `env:"JWT_EXPIRATION_SECONDS"  envDefault:"86400" validate:"min=60"`

	UazapiBase  string `env:"UAZAPI_BASE"  envDefault:"https://hia-clientes.uazapi.com" validate:"url"`
	UazapiToken string `env:"UAZAPI_TOKEN"`

	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"    validate:"required_if=Env production,required_if=Env staging"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// JWTExpiration returns the configured token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWTExpirationSec) * time.Second
}

// CORSOriginList splits CORS_ORIGINS on commas, trimming whitespace.
// A single "*" entry means allow all origins.
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

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
