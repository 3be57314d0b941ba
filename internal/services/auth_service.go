package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/learnhub/auth-service/internal/dto"
	"github.com/learnhub/auth-service/internal/models"
	"github.com/learnhub/auth-service/internal/repositories/users"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidInput = errors.New("invalid registration data")
	// ErrInvalidCredentials is deliberately the same for an unknown email and
	// a wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	store  users.Store
	issuer *TokenIssuer
}

func NewAuthService(store users.Store, issuer *TokenIssuer) *AuthService {
	return &AuthService{store: store, issuer: issuer}
}

// NormalizeEmail lowercases an email for case-insensitive lookup and
// uniqueness. Idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateUser checks an email/password pair and returns the matching user.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login issues a session for an already-authenticated user. Pure apart from
// signing: no storage access.
func (s *AuthService) Login(user *models.User) (*dto.SessionResponse, error) {
	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	expiresAt, err := s.issuer.DecodeExpiry(token)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		},
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	if req.Email == "" || len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: email required and password must be at least 6 characters", ErrInvalidInput)
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", ErrInvalidInput)
	}

	email := NormalizeEmail(req.Email)

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &models.User{
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	if err := s.store.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index is the source of truth.
		if errors.Is(err, users.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.Login(user)
}

// SocialLogin reconciles a provider-verified identity with a local account,
// creating one on first sight. Names on an existing account are never
// overwritten, even when the provider reports different ones.
func (s *AuthService) SocialLogin(ctx context.Context, email, fullName string) (*dto.SessionResponse, error) {
	normalized := NormalizeEmail(email)

	user, err := s.store.FindByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			return nil, err
		}

		firstName, lastName := splitFullName(fullName)
		user = &models.User{
			Email:     normalized,
			Password:  "",
			FirstName: firstName,
			LastName:  lastName,
			Role:      "user",
		}

		if err := s.store.Create(ctx, user); err != nil {
			if errors.Is(err, users.ErrDuplicateEmail) {
				// Lost a race against a concurrent first login; the row
				// exists now, use it.
				user, err = s.store.FindByEmail(ctx, normalized)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
	}

	return s.Login(user)
}

// splitFullName takes the first whitespace-separated token as the first name
// and rejoins the remainder as the last name.
func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
