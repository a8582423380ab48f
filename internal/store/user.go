package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const userColumns = `id, username, password_hash, role, refresh_token_hash, created_at, updated_at`

// CreateUserParams represents parameters for registering a user
type CreateUserParams struct {
	Username     string
	PasswordHash string
	Role         string
}

const sqlCreateUser = `
INSERT INTO users (username, password_hash, role)
VALUES ($1, $2, $3)
RETURNING ` + userColumns

// CreateUser inserts a user, returning ErrConflict when the username is taken
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser, params.Username, params.PasswordHash, params.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrConflict
		}
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

// GetUserByUsername retrieves a user by username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByUsername, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlUpdateUserRole = `
UPDATE users
SET role = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + userColumns

// UpdateUserRole changes a user's role
func (s *Store) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlUpdateUserRole, userID, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to update user role: %w", err)
	}
	return user, nil
}

const sqlUpdateRefreshTokenHash = `
UPDATE users
SET refresh_token_hash = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// UpdateRefreshTokenHash stores the digest of the current refresh token; nil clears it
func (s *Store) UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateRefreshTokenHash, userID, hash)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlDeleteUser = `DELETE FROM users WHERE id = $1`

// DeleteUser removes a user
func (s *Store) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteUser, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
