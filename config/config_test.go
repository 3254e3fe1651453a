package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Report.CacheEnabled {
		t.Error("expected report cache to be enabled by default")
	}
	if cfg.Report.CacheTTL != 10*time.Minute {
		t.Errorf("expected default cache TTL 10m, got %s", cfg.Report.CacheTTL)
	}
	if cfg.RateLimit.MaxRequests != 30 {
		t.Errorf("expected default rate limit 30, got %d", cfg.RateLimit.MaxRequests)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REPORT_CACHE_ENABLED", "false")
	t.Setenv("REPORT_CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "not-a-number")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Report.CacheEnabled {
		t.Error("expected report cache to be disabled")
	}
	if cfg.Report.CacheTTL != 90*time.Second {
		t.Errorf("expected cache TTL 90s, got %s", cfg.Report.CacheTTL)
	}
	if cfg.RateLimit.MaxRequests != 30 {
		t.Errorf("expected invalid value to fall back to 30, got %d", cfg.RateLimit.MaxRequests)
	}
}
