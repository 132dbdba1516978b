package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", config.Server.Port)
	}
	if config.Session.CookieName != "pulse_session" {
		t.Errorf("expected pulse_session cookie, got %s", config.Session.CookieName)
	}
	if config.Session.GetLifetime() != 24*time.Hour {
		t.Errorf("expected 24h lifetime, got %v", config.Session.GetLifetime())
	}
	if !config.Clients.AlphaVantage.IsDemo() {
		t.Error("default Alpha Vantage key must be demo mode")
	}
	if config.Clients.NewsAPI.IsConfigured() {
		t.Error("default NewsAPI must be unconfigured")
	}
	if config.IsProduction() {
		t.Error("default environment must not be production")
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pulse.toml")
	content := `
environment = "production"

[server]
port = 8080

[clients.alphavantage]
api_key = "real-key"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", config.Server.Port)
	}
	if !config.IsProduction() {
		t.Error("expected production environment")
	}
	if config.Clients.AlphaVantage.IsDemo() {
		t.Error("real key must disable demo mode")
	}
	// Untouched values keep defaults
	if config.Session.CookieName != "pulse_session" {
		t.Errorf("expected default cookie name, got %s", config.Session.CookieName)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig("/nonexistent/pulse.toml")
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if config.Server.Port != 5000 {
		t.Errorf("expected defaults, got port %d", config.Server.Port)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PULSE_PORT", "9999")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ALPHA_VANTAGE_KEY", "env-av-key")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Server.Port != 9999 {
		t.Errorf("expected env port 9999, got %d", config.Server.Port)
	}
	if config.Session.Secret != "env-secret" {
		t.Errorf("expected env secret, got %s", config.Session.Secret)
	}
	if config.Clients.AlphaVantage.APIKey != "env-av-key" {
		t.Errorf("expected env AV key, got %s", config.Clients.AlphaVantage.APIKey)
	}
}

func TestSessionConfig_BadLifetimeFallsBack(t *testing.T) {
	cfg := SessionConfig{Lifetime: "not-a-duration"}
	if cfg.GetLifetime() != 24*time.Hour {
		t.Errorf("expected 24h fallback, got %v", cfg.GetLifetime())
	}
}

func TestAlphaVantageConfig_IsDemo(t *testing.T) {
	tests := []struct {
		key  string
		demo bool
	}{
		{"", true},
		{"demo", true},
		{"DEMO", true},
		{"  demo  ", true},
		{"real-key", false},
	}
	for _, tt := range tests {
		cfg := AlphaVantageConfig{APIKey: tt.key}
		if cfg.IsDemo() != tt.demo {
			t.Errorf("IsDemo(%q) = %v, want %v", tt.key, cfg.IsDemo(), tt.demo)
		}
	}
}
