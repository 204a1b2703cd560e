package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ResetTokenClaims is the payload carried by a password-reset deep link.
// The token id (jti) ties the credential to a single password_reset row so
// it can only be redeemed once.
type ResetTokenClaims struct {
	UserID uuid.UUID `json:"sub"`
	jwt.RegisteredClaims
}

type ResetTokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewResetTokenManager(secret string, ttl time.Duration) *ResetTokenManager {
	return &ResetTokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *ResetTokenManager) Generate(userID uuid.UUID) (token string, tokenID uuid.UUID, expiresAt time.Time, err error) {
	tokenID = uuid.New()
	expiresAt = time.Now().Add(m.ttl)
	claims := ResetTokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        tokenID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", uuid.Nil, time.Time{}, err
	}
	return signed, tokenID, expiresAt, nil
}

var (
	ErrResetTokenInvalid = errors.New("reset token is invalid")
	ErrResetTokenExpired = errors.New("reset token has expired")
)

func (m *ResetTokenManager) Parse(tokenString string) (*ResetTokenClaims, error) {
	claims := &ResetTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrResetTokenExpired
		}
		return nil, ErrResetTokenInvalid
	}
	if !token.Valid {
		return nil, ErrResetTokenInvalid
	}
	if claims.ID == "" {
		return nil, ErrResetTokenInvalid
	}
	return claims, nil
}

// TokenID returns the jti as a UUID, or uuid.Nil when it is malformed.
func (c *ResetTokenClaims) TokenID() uuid.UUID {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
