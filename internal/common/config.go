// Package common provides shared utilities for Pulse
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Pulse
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Session     SessionConfig `toml:"session"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SessionConfig holds session cookie and store configuration.
type SessionConfig struct {
	Secret     string `toml:"secret"`      // HMAC key for the session cookie JWT
	CookieName string `toml:"cookie_name"` // default "pulse_session"
	Lifetime   string `toml:"lifetime"`    // duration string, default "24h"
	Path       string `toml:"path"`        // bbolt database file path
}

// GetLifetime parses and returns the session lifetime duration.
func (c *SessionConfig) GetLifetime() time.Duration {
	d, err := time.ParseDuration(c.Lifetime)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	AlphaVantage AlphaVantageConfig `toml:"alphavantage"`
	NewsAPI      NewsAPIConfig      `toml:"newsapi"`
	Gemini       GeminiConfig       `toml:"gemini"`
}

// AlphaVantageConfig holds Alpha Vantage API configuration.
// An empty or "demo" API key keeps the quote provider in demo mode.
type AlphaVantageConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *AlphaVantageConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// IsDemo reports whether the configured key selects the synthetic data path.
func (c *AlphaVantageConfig) IsDemo() bool {
	key := strings.TrimSpace(c.APIKey)
	return key == "" || strings.EqualFold(key, "demo")
}

// NewsAPIConfig holds NewsAPI configuration
type NewsAPIConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *NewsAPIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// IsConfigured reports whether a usable NewsAPI key is present.
func (c *NewsAPIConfig) IsConfigured() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != "news_demo_key"
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Session: SessionConfig{
			Secret:     "dev-secret-key",
			CookieName: "pulse_session",
			Lifetime:   "24h",
			Path:       "data/sessions.db",
		},
		Clients: ClientsConfig{
			AlphaVantage: AlphaVantageConfig{
				BaseURL:   "https://www.alphavantage.co",
				APIKey:    "demo",
				RateLimit: 5,
				Timeout:   "10s",
			},
			NewsAPI: NewsAPIConfig{
				BaseURL: "https://newsapi.org/v2",
				Timeout: "10s",
			},
			Gemini: GeminiConfig{
				Model: "gemini-2.0-flash",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PULSE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("PULSE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("PULSE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("PULSE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("PULSE_DATA_PATH"); path != "" {
		config.Session.Path = filepath.Join(path, "sessions.db")
	}

	// Secret and API keys follow the original env names with PULSE_ fallbacks
	for _, name := range []string{"SECRET_KEY", "PULSE_SECRET_KEY"} {
		if v := os.Getenv(name); v != "" {
			config.Session.Secret = v
			break
		}
	}
	for _, name := range []string{"ALPHA_VANTAGE_KEY", "PULSE_ALPHA_VANTAGE_KEY"} {
		if v := os.Getenv(name); v != "" {
			config.Clients.AlphaVantage.APIKey = v
			break
		}
	}
	for _, name := range []string{"NEWS_API_KEY", "PULSE_NEWS_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			config.Clients.NewsAPI.APIKey = v
			break
		}
	}
	for _, name := range []string{"GEMINI_API_KEY", "PULSE_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			config.Clients.Gemini.APIKey = v
			break
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
