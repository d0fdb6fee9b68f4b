package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nvelez/tripmate/internal/models"
)

// nullString maps an empty string to NULL for optional text columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// CreateUser inserts a new user. ID and timestamps are assigned here.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().Unix()
	if user.CreatedAt == 0 {
		user.CreatedAt = now
	}
	if user.UpdatedAt == 0 {
		user.UpdatedAt = now
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, username, password_hash, first_name, last_name, avatar_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.Username, user.PasswordHash,
		nullString(user.FirstName), nullString(user.LastName), nullString(user.AvatarURL),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email. Returns nil when no user matches.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

// GetUserByUsername retrieves a user by username. Returns nil when no user matches.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, "username = ?", username)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	user := &models.User{}
	var firstName, lastName, avatarURL sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, username, password_hash, first_name, last_name, avatar_url, created_at, updated_at
		 FROM users WHERE `+where, arg,
	).Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&firstName, &lastName, &avatarURL, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FirstName = firstName.String
	user.LastName = lastName.String
	user.AvatarURL = avatarURL.String
	return user, nil
}
