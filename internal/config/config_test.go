package config

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	t.Setenv("SUBMIT_TIMEOUT", "3s")
	if got := duration("SUBMIT_TIMEOUT", 10*time.Second); got != 3*time.Second {
		t.Fatalf("expected 3s, got %s", got)
	}

	t.Setenv("SUBMIT_TIMEOUT", "not-a-duration")
	if got := duration("SUBMIT_TIMEOUT", 10*time.Second); got != 10*time.Second {
		t.Fatalf("expected fallback for invalid value, got %s", got)
	}

	t.Setenv("SUBMIT_TIMEOUT", "-5s")
	if got := duration("SUBMIT_TIMEOUT", 10*time.Second); got != 10*time.Second {
		t.Fatalf("expected fallback for negative value, got %s", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" https://a.example , https://b.example ,")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected result: %#v", got)
	}

	if got := splitAndTrim(" , "); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected wildcard fallback, got %#v", got)
	}
}

func TestLoadPortalDefaults(t *testing.T) {
	t.Setenv("ACCOUNT_API_URL", "http://localhost:8081")

	cfg := LoadPortal()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.SubmitTimeout != 10*time.Second {
		t.Fatalf("expected default submit timeout, got %s", cfg.SubmitTimeout)
	}
	if cfg.LoginURL != "/" {
		t.Fatalf("expected default login URL, got %s", cfg.LoginURL)
	}
}
