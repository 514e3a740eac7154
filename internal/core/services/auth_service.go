package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/momentumhq/momentum-api/internal/core/domain"
)

type AuthService struct {
	repo   domain.UserRepository
	tokens *TokenService
}

func NewAuthService(repo domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

type Credentials struct {
	Email    string
	Password string
}

// AuthResult is what a successful register or login hands back to the client.
type AuthResult struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *AuthService) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	user, err := domain.NewUser(uuid.NewString(), creds.Email)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(creds.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies credentials. Unknown email and wrong password report the same
// ErrInvalidCredentials so account existence is not probeable.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to load user: %w", err)
	}

	if err := user.CheckPassword(creds.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
