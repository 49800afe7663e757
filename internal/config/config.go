package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Provider  ProviderConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig

	warnings []string
}

type ServerConfig struct {
	Port            string        `env:"PORT,default=3001"`
	BasePath        string        `env:"API_BASE_PATH,default=/api"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL,default=file:crypto_advisor.db?_pragma=busy_timeout(5000)"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL,default=168h"` // 7 days
}

// ProviderConfig configures the outbound market data and news providers.
type ProviderConfig struct {
	CoinGeckoBaseURL   string        `env:"COINGECKO_BASE_URL,default=https://api.coingecko.com"`
	CryptoPanicBaseURL string        `env:"CRYPTOPANIC_BASE_URL,default=https://cryptopanic.com"`
	CryptoPanicToken   string        `env:"CRYPTOPANIC_TOKEN"`
	Timeout            time.Duration `env:"PROVIDER_TIMEOUT,default=5s"`
}

type RateLimitConfig struct {
	AuthPerSecond float64 `env:"AUTH_RATE_PER_SEC,default=1"`
	AuthBurst     int     `env:"AUTH_RATE_BURST,default=10"`
}

type CORSConfig struct {
	// Comma separated list; "*" allows any origin.
	Origins        string `env:"CORS_ALLOWED_ORIGINS,default=*"`
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=text"`
}

// Load reads .env (if present) and decodes the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := godotenv.Load(); err != nil {
		cfg.warnings = append(cfg.warnings, fmt.Sprintf(".env not loaded: %v", err))
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if !cfg.IsNewsConfigured() {
		cfg.warnings = append(cfg.warnings, "CRYPTOPANIC_TOKEN not configured. Dashboard news will use static fallback.")
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Server.BasePath = "/" + strings.Trim(strings.TrimSpace(c.Server.BasePath), "/")
	if c.Server.BasePath == "/" {
		c.Server.BasePath = ""
	}
	var origins []string
	for _, o := range strings.Split(c.CORS.Origins, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORS.AllowedOrigins = origins
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.Provider.Timeout <= 0 {
		return errors.New("PROVIDER_TIMEOUT must be positive")
	}
	if c.RateLimit.AuthPerSecond <= 0 || c.RateLimit.AuthBurst <= 0 {
		return errors.New("AUTH_RATE_PER_SEC and AUTH_RATE_BURST must be positive")
	}
	for _, o := range c.CORS.AllowedOrigins {
		if o == "*" {
			continue
		}
		if err := validateOrigin(o); err != nil {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS: %w", err)
		}
	}
	return nil
}

// validateOrigin rejects origins cors.New would panic on.
func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("origin %q must be an http(s) URL such as https://app.example.com", origin)
	}
	return nil
}

// Warnings lists non-fatal problems found while loading, for the caller to log.
func (c *Config) Warnings() []string {
	return c.warnings
}

func (c *Config) IsNewsConfigured() bool {
	return c.Provider.CryptoPanicToken != ""
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORS.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORS.AllowedOrigins) == 0
}
