package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// CredentialStore verifies a username/password pair. The store decides
// nothing about tokens; it only accepts or rejects the login.
type CredentialStore interface {
	Verify(ctx context.Context, username, password string) error
}

// RoleSource is implemented by stores that also know the roles and
// policies granted to a user. Stores without it issue empty sets.
type RoleSource interface {
	Lookup(ctx context.Context, username string) (roles, policies []string, err error)
}

// ValidationError aggregates every violated login rule so a client can
// render all form errors in one round trip.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Issuer produces signed session tokens for verified logins.
type Issuer struct {
	logger *slog.Logger
	codec  *Codec
	store  CredentialStore
	ttl    time.Duration
}

func NewIssuer(logger *slog.Logger, codec *Codec, store CredentialStore, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		logger: logger,
		codec:  codec,
		store:  store,
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue validates the login input, verifies the credentials against the
// store and returns a signed token plus the claims it carries.
// Validation failures come back as *ValidationError with every violated
// rule; a store rejection keeps its cause in the chain, with
// ErrInvalidCredentials marking a plain wrong-login.
func (i *Issuer) Issue(ctx context.Context, username, password string) (string, Claims, error) {
	username = strings.TrimSpace(username)
	if verr := validateLogin(username, password); verr != nil {
		return "", Claims{}, verr
	}

	if err := i.store.Verify(ctx, username, password); err != nil {
		i.logger.InfoContext(ctx, "login rejected", "username", username, "err", err.Error())
		return "", Claims{}, fmt.Errorf("verify credentials: %w", err)
	}

	var roles, policies []string
	if src, ok := i.store.(RoleSource); ok {
		var err error
		roles, policies, err = src.Lookup(ctx, username)
		if err != nil {
			return "", Claims{}, fmt.Errorf("lookup grants for %q: %w", username, err)
		}
	}

	claims := NewClaims(username, i.ttl, roles, policies)
	token, err := i.codec.Encode(claims)
	if err != nil {
		return "", Claims{}, fmt.Errorf("issue token: %w", err)
	}

	i.logger.DebugContext(ctx, "token issued", "subject", claims.Subject, "expires_at", claims.ExpiresAt)
	return token, claims, nil
}

func validateLogin(username, password string) *ValidationError {
	var errs []string
	if username == "" {
		errs = append(errs, "username is required")
	}
	if password == "" {
		errs = append(errs, "password is required")
	} else if len(password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
