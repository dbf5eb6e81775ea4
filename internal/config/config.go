package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; the users API and its cache are only
// enabled when DATABASE_URL and REDIS_ADDR are set.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AppName         string

	// Logging
	LogLevel string
	LogFile  string

	// HTTP edge
	RateLimit          int
	CORSAllowedOrigins []string

	// Database (reader falls back to the writer DSN)
	DatabaseURL       string
	DatabaseReaderURL string
	DBMaxConns        int32
	DBMinConns        int32

	// Redis user cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool
	UserCacheTTL  time.Duration
}

// UsersEnabled reports whether a database is configured for the users API.
func (c *Config) UsersEnabled() bool { return c.DatabaseURL != "" }

// CacheEnabled reports whether a Redis address is configured.
func (c *Config) CacheEnabled() bool { return c.RedisAddr != "" }

func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	var p envParser

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     p.getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    p.getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: p.getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		AppName:         getEnv("APP_NAME", "demo"),

		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:  os.Getenv("LOG_FILE"),

		RateLimit:          p.getInt("RATE_LIMIT", 0),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS"),

		DatabaseURL:       dbURL,
		DatabaseReaderURL: getEnv("DATABASE_READER_URL", dbURL),
		DBMaxConns:        int32(p.getInt("DB_MAX_CONNS", 10)),
		DBMinConns:        int32(p.getInt("DB_MIN_CONNS", 1)),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       p.getInt("REDIS_DB", 0),
		RedisTLS:      p.getBool("REDIS_TLS", false),
		UserCacheTTL:  p.getDuration("USER_CACHE_TTL", time.Minute),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative, got %d", c.RateLimit)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
	}
	if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS (%d), got %d", c.DBMaxConns, c.DBMinConns)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB)
	}
	if c.UserCacheTTL <= 0 {
		return fmt.Errorf("USER_CACHE_TTL must be positive, got %s", c.UserCacheTTL)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// envParser reads typed variables, returning the default for unset ones and
// collecting an error for every value that does not parse.
type envParser struct {
	errs []error
}

func (p *envParser) getInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return defaultVal
	}
	return n
}

func (p *envParser) getBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid boolean %q", key, v))
		return defaultVal
	}
	return b
}

func (p *envParser) getDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return defaultVal
	}
	return d
}

// getList splits a comma-separated variable, dropping empty entries.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
