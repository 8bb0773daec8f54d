package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should fall back to defaults: %v", err)
	}
	if cfg.Port != 3001 {
		t.Errorf("Port = %d, want 3001", cfg.Port)
	}
	if cfg.Mode != "release" {
		t.Errorf("Mode = %q, want release", cfg.Mode)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Errorf("PingPeriod = %v, want 54s", cfg.PingPeriod)
	}
	if cfg.SendBuffer != 32 {
		t.Errorf("SendBuffer = %d, want 32", cfg.SendBuffer)
	}
	if cfg.ReadLimit != 10*1024*1024 {
		t.Errorf("ReadLimit = %d, want 10MiB", cfg.ReadLimit)
	}
	if cfg.RateLimitBurst != 20 || cfg.RateLimitInterval != 10*time.Second {
		t.Errorf("rate limit = %d/%v, want 20/10s", cfg.RateLimitBurst, cfg.RateLimitInterval)
	}
}
