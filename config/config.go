package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Media    MediaConfig
	Catalog  CatalogConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"seqrdb"`
	// DSN is the pgx connection string. When empty it is derived from the
	// fields above.
	DSN string `env:"DB_DSN"`
}

type RedisConfig struct {
	Addr          string        `env:"REDIS_ADDR"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB" envDefault:"0"`
	AnalysedByTTL time.Duration `env:"ANALYSED_BY_CACHE_TTL" envDefault:"5m"`
}

// Enabled reports whether a Redis cache is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type MediaConfig struct {
	Root string `env:"MEDIA_ROOT" envDefault:"/media/"`
}

type CatalogConfig struct {
	// File overrides the compiled-in field catalog.
	File string `env:"CATALOG_FILE"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.Database.DSN == "" && c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST or DB_DSN is required"))
	}
	if c.Server.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be at least 1"))
	}
	if c.Redis.AnalysedByTTL < 0 {
		errs = append(errs, errors.New("ANALYSED_BY_CACHE_TTL must not be negative"))
	}
	if _, err := ParseLogLevel(c.App.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// PoolDSN returns the pgx connection string.
func (d DatabaseConfig) PoolDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	if d.Password == "" {
		u.User = url.User(d.User)
	}
	return u.String()
}

// ParseLogLevel maps LOG_LEVEL onto a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q: %w", level, err)
	}
	return l, nil
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}
