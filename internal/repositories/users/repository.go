package users

import (
	"context"
	"errors"

	"github.com/learnhub/auth-service/internal/models"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already taken")
)

// Store is the credential-store boundary. Emails passed in are expected to be
// normalized (lowercased) by the caller.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
