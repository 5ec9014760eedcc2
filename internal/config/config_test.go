package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_URL", "APP_ENV", "ML_SERVICE_URL", "ML_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS"} {
		// Setenv registers the restore; Unsetenv clears it for this test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := FromEnv()
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("AppEnv = %q, want production", cfg.AppEnv)
	}
	if cfg.MLTimeout != 10*time.Second {
		t.Errorf("MLTimeout = %v, want 10s", cfg.MLTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "Dev")
	t.Setenv("ML_SERVICE_URL", "http://ml:5000/")
	t.Setenv("ML_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com,")

	cfg := FromEnv()
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.AppEnv != "development" || cfg.IsProduction() {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.MLServiceURL != "http://ml:5000" {
		t.Errorf("MLServiceURL = %q, want trailing slash trimmed", cfg.MLServiceURL)
	}
	if cfg.MLTimeout != 3*time.Second {
		t.Errorf("MLTimeout = %v, want 3s", cfg.MLTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins = %v, want 2 entries", cfg.CORSAllowedOrigins)
	}
}

func TestGetEnvIntFallsBack(t *testing.T) {
	cases := []string{"abc", "-4", "0", "  "}
	for _, v := range cases {
		t.Setenv("ML_TIMEOUT_SECONDS", v)
		if got := getEnvInt("ML_TIMEOUT_SECONDS", 10); got != 10 {
			t.Errorf("getEnvInt(%q) = %d, want fallback 10", v, got)
		}
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod": "production", "LOCAL": "development", "stage": "staging",
		"testing": "test", " Custom ": "custom",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
