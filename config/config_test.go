package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := load()

	if cfg.Application.Name != "kopitiam" {
		t.Errorf("expected default app name kopitiam, got %s", cfg.Application.Name)
	}
	if cfg.Application.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Application.Port)
	}
	if cfg.Pricing.LargeCupUpcharge != 0.50 {
		t.Errorf("expected default large cup upcharge 0.50, got %.2f", cfg.Pricing.LargeCupUpcharge)
	}
	if cfg.Pricing.ColdUpcharge != 0.30 {
		t.Errorf("expected default cold upcharge 0.30, got %.2f", cfg.Pricing.ColdUpcharge)
	}
	if cfg.Order.EstimatedPrepDuration != 15*time.Minute {
		t.Errorf("expected default prep duration 15m, got %s", cfg.Order.EstimatedPrepDuration)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_TIMEOUT", "3s")
	t.Setenv("PRICING_COLD_UPCHARGE", "0.40")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("REWARDS_SEED_POINTS", "25")

	cfg := load()

	if cfg.Application.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Application.Port)
	}
	if cfg.Application.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.Application.Timeout)
	}
	if cfg.Pricing.ColdUpcharge != 0.40 {
		t.Errorf("expected cold upcharge 0.40, got %.2f", cfg.Pricing.ColdUpcharge)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("expected trimmed origin list, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Rewards.SeedPoints != 25 {
		t.Errorf("expected seed points 25, got %d", cfg.Rewards.SeedPoints)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")
	t.Setenv("APP_DEBUG", "maybe")
	t.Setenv("PAYMENT_PROCESSING_DELAY", "soon")

	cfg := load()

	if cfg.Application.Port != 8080 {
		t.Errorf("expected the default port on a malformed value, got %d", cfg.Application.Port)
	}
	if cfg.Application.Debug != true {
		t.Error("expected the default debug flag on a malformed value")
	}
	if cfg.Payment.ProcessingDelay != 2*time.Second {
		t.Errorf("expected the default processing delay on a malformed value, got %s", cfg.Payment.ProcessingDelay)
	}
}
