package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
)

func TestResetPasswordDecodesOutcome(t *testing.T) {
	var gotBody confirmRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/auth/password-reset/confirm" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.ResetResult{Success: false, Message: "token has expired"})
	}))
	defer server.Close()

	c := NewAccountAPIClient(server.URL, time.Second)
	res, err := c.ResetPassword(context.Background(), "tok-123", "hunter2hunter2")
	if err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if res.Success {
		t.Fatalf("expected business failure")
	}
	if res.Message != "token has expired" {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if gotBody.Token != "tok-123" || gotBody.NewPassword != "hunter2hunter2" {
		t.Fatalf("unexpected request body %#v", gotBody)
	}
}

func TestResetPasswordServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewAccountAPIClient(server.URL, time.Second)
	if _, err := c.ResetPassword(context.Background(), "tok", "hunter2hunter2"); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestResetPasswordUnreachableHost(t *testing.T) {
	c := NewAccountAPIClient("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := c.ResetPassword(context.Background(), "tok", "hunter2hunter2"); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestResetPasswordHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background read; otherwise it
		// never notices the client disconnect and this context is never canceled.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewAccountAPIClient(server.URL, time.Second)
	if _, err := c.ResetPassword(ctx, "tok", "hunter2hunter2"); err == nil {
		t.Fatalf("expected context deadline error")
	}
}
