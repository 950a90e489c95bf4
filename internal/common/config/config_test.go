package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected default host 127.0.0.1, got %s", cfg.Host)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Debug {
		t.Error("expected debug disabled by default")
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected default timeout 5s, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_HOST", "0.0.0.0")
	t.Setenv("API_PORT", "9090")
	t.Setenv("API_DEBUG", "true")
	t.Setenv("API_REQUEST_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("expected debug enabled")
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.RequestTimeout)
	}
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("unexpected addr: %s", cfg.Addr())
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestLoad_InvalidDebugFallsBack(t *testing.T) {
	t.Setenv("API_DEBUG", "banana")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Debug {
		t.Error("expected fallback to debug=false")
	}
}
