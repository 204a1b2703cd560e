package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, userID, tokenID uuid.UUID, expiresAt time.Time) (*domain.PasswordReset, error)
	FindByTokenID(ctx context.Context, tokenID uuid.UUID) (*domain.PasswordReset, error)
	MarkConsumed(ctx context.Context, id int64) error
	ConsumeByUser(ctx context.Context, userID uuid.UUID) error
}
