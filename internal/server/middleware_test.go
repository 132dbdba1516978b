package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestSessionToken_Roundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := signSessionToken("sid-123", secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if sid := parseSessionToken(token, secret); sid != "sid-123" {
		t.Errorf("expected sid-123, got %q", sid)
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := signSessionToken("sid-123", []byte("secret-a"), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if sid := parseSessionToken(token, []byte("secret-b")); sid != "" {
		t.Errorf("expected rejection, got %q", sid)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := signSessionToken("sid-123", secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if sid := parseSessionToken(token, secret); sid != "" {
		t.Errorf("expected expired token rejection, got %q", sid)
	}
}

func TestSessionToken_Garbage(t *testing.T) {
	if sid := parseSessionToken("garbage", []byte("secret")); sid != "" {
		t.Errorf("expected rejection of malformed token, got %q", sid)
	}
}

func TestPathParam(t *testing.T) {
	tests := []struct {
		path, prefix, suffix, want string
	}{
		{"/api/stock/AAPL", "/api/stock/", "", "AAPL"},
		{"/api/historical/AAPL/chart.png", "/api/historical/", "/chart.png", "AAPL"},
		{"/api/watchlist/remove/MSFT", "/api/watchlist/remove/", "", "MSFT"},
		{"/api/other", "/api/stock/", "", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", tt.path, nil)
		if got := PathParam(req, tt.prefix, tt.suffix); got != tt.want {
			t.Errorf("PathParam(%q, %q, %q) = %q, want %q", tt.path, tt.prefix, tt.suffix, got, tt.want)
		}
	}
}
