package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
)

type fakeBackend struct {
	mu     sync.Mutex
	calls  int
	result *domain.ResetResult
	err    error

	// when set, ResetPassword blocks until released is closed
	block    chan struct{}
	started  chan struct{}
	startSig sync.Once
}

func (f *fakeBackend) ResetPassword(ctx context.Context, token, newPassword string) (*domain.ResetResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.startSig.Do(func() { close(f.started) })
	}
	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func validForm() ResetForm {
	return ResetForm{Password: "longenough", Confirm: "longenough"}
}

func TestSubmitResetMissingToken(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewResetPortalService(backend)

	if _, err := svc.SubmitReset(context.Background(), "   ", validForm()); !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
	if backend.callCount() != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestSubmitResetValidationFailureSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewResetPortalService(backend)

	_, err := svc.SubmitReset(context.Background(), "tok", ResetForm{Password: "short", Confirm: "short"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Message != "password must be at least 8 characters" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if backend.callCount() != 0 {
		t.Fatalf("validation failure must not reach the backend")
	}
}

func TestSubmitResetSuccess(t *testing.T) {
	backend := &fakeBackend{result: &domain.ResetResult{Success: true, Message: "password updated successfully"}}
	svc := NewResetPortalService(backend)

	res, err := svc.SubmitReset(context.Background(), "tok", validForm())
	if err != nil {
		t.Fatalf("SubmitReset returned error: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success")
	}
	if backend.callCount() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", backend.callCount())
	}
	if svc.InFlight("tok") {
		t.Fatalf("expected in-flight slot to be released")
	}
}

func TestSubmitResetBusinessFailurePassesMessageThrough(t *testing.T) {
	backend := &fakeBackend{result: &domain.ResetResult{Success: false, Message: "the reset link has expired, request a new one"}}
	svc := NewResetPortalService(backend)

	res, err := svc.SubmitReset(context.Background(), "tok", validForm())
	if err != nil {
		t.Fatalf("SubmitReset returned error: %v", err)
	}
	if res.Success {
		t.Fatalf("expected business failure")
	}
	if res.Message != "the reset link has expired, request a new one" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestSubmitResetTransportFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("connection refused")}
	svc := NewResetPortalService(backend)

	_, err := svc.SubmitReset(context.Background(), "tok", validForm())
	if err == nil || errors.Is(err, domain.ErrSubmissionInFlight) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if svc.InFlight("tok") {
		t.Fatalf("expected in-flight slot to be released after failure")
	}
}

func TestSubmitResetDuplicateWhileInFlight(t *testing.T) {
	backend := &fakeBackend{
		result:  &domain.ResetResult{Success: true, Message: "ok"},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	svc := NewResetPortalService(backend)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := svc.SubmitReset(context.Background(), "tok", validForm()); err != nil {
			t.Errorf("first submit failed: %v", err)
		}
	}()

	<-backend.started
	if !svc.InFlight("tok") {
		t.Fatalf("expected token to be in flight")
	}

	if _, err := svc.SubmitReset(context.Background(), "tok", validForm()); !errors.Is(err, domain.ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(backend.block)
	<-done

	if backend.callCount() != 1 {
		t.Fatalf("expected one upstream call, got %d", backend.callCount())
	}
	if svc.InFlight("tok") {
		t.Fatalf("expected in-flight slot to be released")
	}
}

func TestSubmitResetDifferentTokensDoNotBlockEachOther(t *testing.T) {
	backend := &fakeBackend{
		result:  &domain.ResetResult{Success: true, Message: "ok"},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	svc := NewResetPortalService(backend)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.SubmitReset(context.Background(), "tok-a", validForm())
	}()
	<-backend.started

	if svc.InFlight("tok-b") {
		t.Fatalf("unrelated token must not be in flight")
	}

	close(backend.block)
	<-done
}

func TestSubmitResetDiscardsOutcomeWhenContextDone(t *testing.T) {
	backend := &fakeBackend{
		result:  &domain.ResetResult{Success: true, Message: "ok"},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	svc := NewResetPortalService(backend)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	resCh := make(chan *domain.ResetResult, 1)
	go func() {
		res, err := svc.SubmitReset(ctx, "tok", validForm())
		resCh <- res
		errCh <- err
	}()

	<-backend.started
	cancel()
	close(backend.block)

	select {
	case res := <-resCh:
		if res != nil {
			t.Fatalf("expected outcome to be discarded, got %#v", res)
		}
	case <-time.After(time.Second):
		t.Fatalf("submit did not return")
	}
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if svc.InFlight("tok") {
		t.Fatalf("expected in-flight slot to be released")
	}
}
