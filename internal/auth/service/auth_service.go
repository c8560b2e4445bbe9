// Package service implements the authentication flows: registration, login,
// and resolving a bearer token back to a user.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flowpad-app/flowpad-backend/internal/auth/credentials"
	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
	"github.com/flowpad-app/flowpad-backend/internal/auth/token"
)

// UserRepository is the persistence surface the auth service needs.
type UserRepository interface {
	Register(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	UpdateEmail(ctx context.Context, userID int, newEmail string) error
	Delete(ctx context.Context, userID int) error
}

type AuthService struct {
	users  UserRepository
	tokens *token.Codec
}

func NewAuthService(users UserRepository, tokens *token.Codec) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is what a successful register or login hands back to the caller.
type AuthResult struct {
	User  *domain.User
	Token string
}

const minPasswordLen = 6

// Register creates an account and issues its first token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Username == "" {
		return nil, domain.MissingField("username")
	}
	if in.Email == "" {
		return nil, domain.MissingField("email")
	}
	if in.Password == "" {
		return nil, domain.MissingField("password")
	}
	if len(in.Password) < minPasswordLen {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}

	hash, err := credentials.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Register(ctx, in.Username, in.Email, hash)
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// Login verifies credentials and issues a fresh token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if in.Email == "" {
		return nil, domain.MissingField("email")
	}
	if in.Password == "" {
		return nil, domain.MissingField("password")
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !credentials.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{User: user, Token: tok}, nil
}

// Identify resolves a bearer token to the user it was issued for. A token
// whose subject no longer exists degrades to ErrInvalidToken.
func (s *AuthService) Identify(ctx context.Context, tokenString string) (*domain.User, error) {
	userID, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// UpdateEmail changes the authenticated user's email address.
func (s *AuthService) UpdateEmail(ctx context.Context, userID int, newEmail string) error {
	if newEmail == "" {
		return domain.MissingField("email")
	}
	return s.users.UpdateEmail(ctx, userID, newEmail)
}

// DeleteAccount removes the user and cascades to everything they own.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int) error {
	return s.users.Delete(ctx, userID)
}
