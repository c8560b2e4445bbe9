package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUserExists is returned when a username or email is already taken.
	ErrUserExists = errors.New("username or email already exists")

	// ErrEmailTaken is returned when an email update collides with another account.
	ErrEmailTaken = errors.New("email already in use by another account")

	// ErrUserNotFound is returned when no user matches the given id.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers malformed tokens, bad signatures, and tokens
	// whose subject no longer resolves to a user.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a well-formed token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// MissingField builds a ValidationError for an absent required field.
func MissingField(field string) error {
	return &ValidationError{Field: field}
}
