package http

import (
	"strings"
	"testing"
)

func TestSanitizeBodyRedactsCredentials(t *testing.T) {
	body := []byte(`{"token":"deep-link-jwt","password":"hunter22","email":"user@example.com"}`)
	out, ok := sanitizeBody(body).(map[string]interface{})
	if !ok {
		t.Fatalf("expected a map summary, got %T", sanitizeBody(body))
	}
	if out["token"] != "redacted" || out["password"] != "redacted" {
		t.Fatalf("credentials leaked: %#v", out)
	}
	if out["email"] != "user@example.com" {
		t.Fatalf("non-sensitive field mangled: %#v", out)
	}
}

func TestSanitizeBodyRedactsPlainTextWithSecrets(t *testing.T) {
	if got := sanitizeBody([]byte("my password is hunter22")); got != "redacted" {
		t.Fatalf("expected redaction, got %v", got)
	}
}

func TestRedactURIHidesToken(t *testing.T) {
	got := redactURI("/reset-password?token=eyJhbGciOi&lang=en")
	if strings.Contains(got, "eyJhbGciOi") {
		t.Fatalf("token leaked into log URI: %s", got)
	}
	if !strings.Contains(got, "lang=en") {
		t.Fatalf("unrelated query dropped: %s", got)
	}
}

func TestClampStringTruncates(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+100)
	got := clampString(long)
	if len(got) >= len(long) {
		t.Fatalf("expected truncation")
	}
	if !strings.HasSuffix(got, "...(truncated)") {
		t.Fatalf("expected truncation marker")
	}
}
