package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
)

// ResetBackend is the single collaborator of the portal: the account API's
// reset-password endpoint.
type ResetBackend interface {
	ResetPassword(ctx context.Context, token, newPassword string) (*domain.ResetResult, error)
}

// ResetPortalService drives a reset submission: token presence check, form
// validation, then exactly one upstream call per token at a time.
type ResetPortalService struct {
	backend ResetBackend

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewResetPortalService(backend ResetBackend) *ResetPortalService {
	return &ResetPortalService{
		backend:  backend,
		inFlight: make(map[string]struct{}),
	}
}

// SubmitReset validates the form and forwards the reset to the account API.
// Returns domain.ErrTokenMissing for a blank token, a *domain.ValidationError
// when the form fails its checks (no upstream call is made), and
// domain.ErrSubmissionInFlight when a request for the same token is still
// outstanding. If the caller's context is done by the time the upstream call
// returns, the outcome is discarded and the context error is reported.
func (s *ResetPortalService) SubmitReset(ctx context.Context, token string, form ResetForm) (*domain.ResetResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrTokenMissing
	}
	if verr := ValidateResetForm(form); verr != nil {
		return nil, verr
	}

	if !s.acquire(token) {
		return nil, domain.ErrSubmissionInFlight
	}
	defer s.release(token)

	result, err := s.backend.ResetPassword(ctx, token, form.Password)

	// The owning request is gone; whatever came back must not be acted on.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}
	return result, nil
}

// InFlight reports whether a submission for the token is outstanding.
func (s *ResetPortalService) InFlight(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[token]
	return ok
}

func (s *ResetPortalService) acquire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[token]; ok {
		return false
	}
	s.inFlight[token] = struct{}{}
	return true
}

func (s *ResetPortalService) release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, token)
}
