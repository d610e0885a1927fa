package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin stores the bcrypt hash of password for username, replacing
// any previous one. An empty password keeps the stored hash, and fails when
// there is none.
func EnsureAdmin(ctx context.Context, db *sql.DB, username, password string) error {
	if password == "" {
		var exists bool
		err := db.QueryRowContext(ctx, `SELECT 1 FROM user WHERE username = ?`, username).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("admin user %q has no password, set -admin-password", username)
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO user (username, password_hash) VALUES (?, ?)
		ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash`,
		username,
		hash,
	)
	if err != nil {
		return fmt.Errorf("store admin user: %w", err)
	}
	return nil
}
