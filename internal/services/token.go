package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/learnhub/auth-service/internal/models"
)

var ErrMissingSecret = errors.New("signing secret must not be empty")

// TokenIssuer signs session tokens with a process-wide symmetric secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer fails when the secret is empty; the caller is expected to
// treat that as fatal at startup.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs the identity claims for a user. The claim set is fixed so
// downstream consumers can decode identity without a storage lookup.
func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"email":     user.Email,
		"rol":       user.Role,
		"name":      user.FirstName,
		"last_name": user.LastName,
		"iat":       now.Unix(),
		"exp":       now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// DecodeExpiry extracts the exp claim from a freshly issued token. The token
// was signed by this process moments ago, so no verification happens here;
// the value is only echoed back to the caller.
func (t *TokenIssuer) DecodeExpiry(tokenString string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, fmt.Errorf("failed to decode token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, errors.New("token has no expiry claim")
	}
	return exp.Unix(), nil
}
