// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the taskkeeper server.
//
// Секреты подписи — обязательная конфигурация процесса: их отсутствие
// останавливает запуск, это не ошибка уровня запроса.
type Config struct {
	Addr            string        // bind address для HTTP endpoint
	DatabasePath    string        // путь к файлу SQLite
	AccessSecret    string        // HMAC секрет для access токенов
	RefreshSecret   string        // HMAC секрет для refresh токенов, отличный от access
	AccessTokenTTL  time.Duration // срок жизни access токена
	RefreshTokenTTL time.Duration // срок жизни refresh токена
	AuthRateLimit   int           // запросов на auth-эндпоинты в окно, на один IP
	AuthRateWindow  time.Duration // окно rate limiter для auth-эндпоинтов
	LogLevel        string        // debug, info, warn, error
}

// loadDefaults populates Config with development defaults.
// Секреты дефолтов не имеют: их задают окружением или флагами.
func (c *Config) loadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "taskkeeper.db"
	c.AccessTokenTTL = time.Hour
	c.RefreshTokenTTL = 7 * 24 * time.Hour
	c.AuthRateLimit = 10
	c.AuthRateWindow = time.Minute
	c.LogLevel = "info"
}

// loadEnv overlays values from environment variables
func (c *Config) loadEnv() error {
	if v := os.Getenv("TASKKEEPER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("TASKKEEPER_DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("TASKKEEPER_ACCESS_SECRET"); v != "" {
		c.AccessSecret = v
	}
	if v := os.Getenv("TASKKEEPER_REFRESH_SECRET"); v != "" {
		c.RefreshSecret = v
	}
	if v := os.Getenv("TASKKEEPER_ACCESS_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TASKKEEPER_ACCESS_TTL: %w", err)
		}
		c.AccessTokenTTL = d
	}
	if v := os.Getenv("TASKKEEPER_REFRESH_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TASKKEEPER_REFRESH_TTL: %w", err)
		}
		c.RefreshTokenTTL = d
	}
	if v := os.Getenv("TASKKEEPER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// parseFlags overlays values from command-line flags
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("taskkeeper-server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to SQLite database file")
	fs.StringVar(&c.AccessSecret, "access-secret", c.AccessSecret, "HMAC secret for access tokens")
	fs.StringVar(&c.RefreshSecret, "refresh-secret", c.RefreshSecret, "HMAC secret for refresh tokens")
	fs.DurationVar(&c.AccessTokenTTL, "access-ttl", c.AccessTokenTTL, "access token lifetime")
	fs.DurationVar(&c.RefreshTokenTTL, "refresh-ttl", c.RefreshTokenTTL, "refresh token lifetime")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")

	return fs.Parse(args)
}

// Validate проверяет полноту конфигурации
func (c *Config) Validate() error {
	if c.AccessSecret == "" {
		return fmt.Errorf("access token secret is required (TASKKEEPER_ACCESS_SECRET or -access-secret)")
	}
	if c.RefreshSecret == "" {
		return fmt.Errorf("refresh token secret is required (TASKKEEPER_REFRESH_SECRET or -refresh-secret)")
	}
	if c.AccessSecret == c.RefreshSecret {
		return fmt.Errorf("access and refresh token secrets must differ")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	return nil
}

// Load builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.loadDefaults()

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
