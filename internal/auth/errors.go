package auth

import "errors"

var (
	// ErrMissingCredentials means no token was found in the request.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidToken covers signature, structure and expiry failures.
	// Decode collapses the cause so callers can't probe which check failed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials means the credential store rejected the login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
