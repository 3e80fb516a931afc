package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Search.Timeout != 20*time.Second {
		t.Errorf("search timeout = %v, want 20s", cfg.Search.Timeout)
	}
	if cfg.Extract.Timeout != 12*time.Second {
		t.Errorf("content timeout = %v, want 12s", cfg.Extract.Timeout)
	}
	if cfg.Extract.MaxPageChars != 4000 {
		t.Errorf("max page chars = %d, want 4000", cfg.Extract.MaxPageChars)
	}
	if cfg.Extract.Workers != 10 {
		t.Errorf("enrich workers = %d, want 10", cfg.Extract.Workers)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAX_PAGE_CHARS", "100")
	t.Setenv("SCOUR_SEARCH_TIMEOUT", "5s")
	t.Setenv("SCOUR_PORT", "9999")

	cfg := Load()

	if cfg.Extract.MaxPageChars != 100 {
		t.Errorf("max page chars = %d, want 100", cfg.Extract.MaxPageChars)
	}
	if cfg.Search.Timeout != 5*time.Second {
		t.Errorf("search timeout = %v, want 5s", cfg.Search.Timeout)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("MAX_PAGE_CHARS", "not a number")
	t.Setenv("SCOUR_SEARCH_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Extract.MaxPageChars != 4000 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.Extract.MaxPageChars)
	}
	if cfg.Search.Timeout != 20*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.Search.Timeout)
	}
}
