package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
	"github.com/njprem/Fit_city_Reset_Portal/internal/repository/ports"
	"github.com/njprem/Fit_city_Reset_Portal/internal/util"
)

// ResetMailer delivers the deep link produced by a reset request.
type ResetMailer interface {
	SendResetLink(ctx context.Context, email, link string) error
}

// AccountService implements the account API side of the reset flow: issuing
// deep-link tokens and redeeming them for a password change.
type AccountService struct {
	users         ports.UserRepository
	resets        ports.PasswordResetRepository
	tokens        *util.ResetTokenManager
	mailer        ResetMailer
	portalBaseURL string
}

func NewAccountService(users ports.UserRepository, resets ports.PasswordResetRepository, tokens *util.ResetTokenManager, mailer ResetMailer, portalBaseURL string) *AccountService {
	return &AccountService{
		users:         users,
		resets:        resets,
		tokens:        tokens,
		mailer:        mailer,
		portalBaseURL: portalBaseURL,
	}
}

// RequestReset mints a single-use reset token for the account and mails the
// portal deep link. Unknown addresses return nil so the endpoint does not
// reveal which emails exist.
func (s *AccountService) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}

	// Any earlier link stops working once a new one is requested.
	if err := s.resets.ConsumeByUser(ctx, user.ID); err != nil {
		return err
	}

	token, tokenID, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return err
	}
	if _, err := s.resets.Create(ctx, user.ID, tokenID, expiresAt); err != nil {
		return err
	}

	link := s.portalBaseURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := s.mailer.SendResetLink(ctx, user.Email, link); err != nil {
		log.Printf("password reset mail to %s failed: %v", user.Email, err)
		return err
	}
	return nil
}

// ConfirmReset redeems a reset token for a new password. Rejections the user
// can act on come back as a ResetResult with Success false; only
// infrastructure faults are returned as errors.
func (s *AccountService) ConfirmReset(ctx context.Context, token, newPassword string) (*domain.ResetResult, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, util.ErrResetTokenExpired) {
			return rejected("the reset link has expired, request a new one"), nil
		}
		return rejected("the reset link is invalid"), nil
	}

	tokenID := claims.TokenID()
	if tokenID == uuid.Nil {
		return rejected("the reset link is invalid"), nil
	}

	reset, err := s.resets.FindByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rejected("the reset link is invalid"), nil
		}
		return nil, err
	}
	if !reset.Usable(time.Now()) {
		return rejected("the reset link has already been used or expired"), nil
	}

	if err := util.ValidatePassword(newPassword); err != nil {
		return rejected(err.Error()), nil
	}

	user, err := s.users.FindByID(ctx, reset.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rejected("the account no longer exists"), nil
		}
		return nil, err
	}

	hash, salt, err := util.DerivePassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash, salt); err != nil {
		return nil, err
	}
	if err := s.resets.MarkConsumed(ctx, reset.ID); err != nil {
		return nil, err
	}

	return &domain.ResetResult{Success: true, Message: "password updated successfully"}, nil
}

func rejected(message string) *domain.ResetResult {
	return &domain.ResetResult{Success: false, Message: message}
}
