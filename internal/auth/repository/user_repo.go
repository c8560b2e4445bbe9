package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/flowpad-app/flowpad-backend/internal/auth/domain"
)

// pq unique_violation
const uniqueViolation = "23505"

// UserRepository provides persistence operations for user accounts.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register inserts a new user. A user whose username or email is already
// taken yields domain.ErrUserExists; the unique constraints catch the race
// between the combined lookup and the insert.
func (r *UserRepository) Register(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
`, username, email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	u := &domain.User{Username: username, Email: email, PasswordHash: passwordHash}
	err = r.db.QueryRowContext(ctx, `
INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, created_at
`, username, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

// GetByEmail returns the user owning email, including the password hash for
// credential checks. Absence maps to domain.ErrUserNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE email = $1
`, email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE id = $1
`, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// UpdateEmail changes the user's email. The email is a conflict only when a
// different user already holds it.
func (r *UserRepository) UpdateEmail(ctx context.Context, userID int, newEmail string) error {
	var taken bool
	err := r.db.QueryRowContext(ctx, `
SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)
`, newEmail, userID).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return domain.ErrEmailTaken
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE users SET email = $1 WHERE id = $2
`, newEmail, userID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update email: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update email: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user and everything they own. Projects are deleted
// explicitly in the same transaction; tags and node images follow through
// the ON DELETE CASCADE constraints.
func (r *UserRepository) Delete(ctx context.Context, userID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
DELETE FROM projects WHERE user_id = $1
`, userID); err != nil {
		return fmt.Errorf("delete user projects: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
DELETE FROM users WHERE id = $1
`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit()
}
