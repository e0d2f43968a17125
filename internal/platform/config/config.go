package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidPort           = errors.New("config: invalid PORT number")
	errTimeoutOutOfRange     = errors.New("config: FETCH_TIMEOUT_SECONDS must be 1-120")
	errConcurrencyOutOfRange = errors.New("config: FETCH_CONCURRENCY must be 1-32")
	errMaxURLsOutOfRange     = errors.New("config: MAX_URLS must be 1-100")
	errTTLOutOfRange         = errors.New("config: REPORT_TTL_MINUTES must be 1-1440")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port             string
	LogLevel         string
	FetchTimeout     time.Duration
	FetchConcurrency int
	MaxURLs          int
	ReportTTL        time.Duration
	// AllowPrivateHosts disables the SSRF dial guard so intranet pages
	// can be analyzed.
	AllowPrivateHosts bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		FetchTimeout:      time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		FetchConcurrency:  getEnvAsInt("FETCH_CONCURRENCY", 4),
		MaxURLs:           getEnvAsInt("MAX_URLS", 10),
		ReportTTL:         time.Duration(getEnvAsInt("REPORT_TTL_MINUTES", 30)) * time.Minute,
		AllowPrivateHosts: getEnvAsBool("ALLOW_PRIVATE_HOSTS", false),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.FetchTimeout < time.Second || c.FetchTimeout > 120*time.Second {
		return fmt.Errorf("%w: got %s", errTimeoutOutOfRange, c.FetchTimeout)
	}

	if c.FetchConcurrency < 1 || c.FetchConcurrency > 32 {
		return fmt.Errorf("%w: got %d", errConcurrencyOutOfRange, c.FetchConcurrency)
	}

	if c.MaxURLs < 1 || c.MaxURLs > 100 {
		return fmt.Errorf("%w: got %d", errMaxURLsOutOfRange, c.MaxURLs)
	}

	if c.ReportTTL < time.Minute || c.ReportTTL > 24*time.Hour {
		return fmt.Errorf("%w: got %s", errTTLOutOfRange, c.ReportTTL)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}
