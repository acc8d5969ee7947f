package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Brkic92/simple-auth-api/internal/auth"
)

// UserStore verifies logins against a users table:
//
//	users(username text primary key, password_hash text,
//	      roles text[], policies text[])
//
// Password hashes are bcrypt. An unknown username and a wrong password
// both come back as auth.ErrInvalidCredentials so login responses don't
// reveal which part was wrong.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Verify(ctx context.Context, username, password string) error {
	var hash string
	err := s.pool.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE username = $1`, username,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ErrInvalidCredentials
		}
		return fmt.Errorf("query user %q: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return auth.ErrInvalidCredentials
	}
	return nil
}

// Lookup returns the roles and policies granted to a user. It
// implements auth.RoleSource so issued tokens carry the user's grants.
func (s *UserStore) Lookup(ctx context.Context, username string) ([]string, []string, error) {
	var roles, policies []string
	err := s.pool.QueryRow(ctx,
		`SELECT roles, policies FROM users WHERE username = $1`, username,
	).Scan(&roles, &policies)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("query grants for %q: %w", username, err)
	}
	return roles, policies, nil
}

// HashPassword produces a bcrypt hash suitable for the users table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

var (
	_ auth.CredentialStore = (*UserStore)(nil)
	_ auth.RoleSource      = (*UserStore)(nil)
)
