package config

import (
	"os"
	"testing"
	"time"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STOREFRONT_ADDR", "DATABASE_URL", "REDIS_URL", "TOAST_DURATION", "DISCOUNT_DELAY", "DISCOUNT_DURATION", "TRYON_WARMUP", "ORDER_PREFIX"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.ToastDuration != 5*time.Second {
		t.Fatalf("expected default toast duration 5s, got %v", cfg.ToastDuration)
	}
	if cfg.DiscountDelay != 3*time.Second || cfg.DiscountDuration != 8*time.Second {
		t.Fatalf("unexpected discount timings: %v / %v", cfg.DiscountDelay, cfg.DiscountDuration)
	}
	if cfg.TryOnWarmup != 1500*time.Millisecond {
		t.Fatalf("expected try-on warmup 1.5s, got %v", cfg.TryOnWarmup)
	}
	if cfg.OrderPrefix != "SS" {
		t.Fatalf("expected order prefix SS, got %q", cfg.OrderPrefix)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without REDIS_URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", ":9090")
	t.Setenv("TOAST_DURATION", "1s")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if cfg.ToastDuration != time.Second {
		t.Fatalf("expected 1s, got %v", cfg.ToastDuration)
	}
	if !cfg.Env().IsProduction() {
		t.Fatalf("expected production environment, got %s", cfg.Env())
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("redis should be enabled when REDIS_URL is set")
	}
}

func TestParseEnvironment_Unknown(t *testing.T) {
	if got := ParseEnvironment("qa"); got != Development {
		t.Fatalf("expected development fallback, got %s", got)
	}
}
