package auth

import (
	"slices"
	"time"
)

// DefaultTTL is applied when no token lifetime is configured.
const DefaultTTL = 24 * time.Hour

// Claims is the decoded identity and authorization payload carried by a
// token. It is built once at login, serialized into the token and
// reconstructed on every protected request. Never mutated after
// construction; the token is the only durable session representation.
type Claims struct {
	Subject   string
	IssuedAt  int64
	ExpiresAt int64
	Roles     []string
	Policies  []string
}

// NewClaims builds claims for subject expiring ttl from now. A
// non-positive ttl falls back to DefaultTTL.
func NewClaims(subject string, ttl time.Duration, roles, policies []string) Claims {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now().Unix()
	return Claims{
		Subject:   subject,
		IssuedAt:  now,
		ExpiresAt: now + int64(ttl/time.Second),
		Roles:     roles,
		Policies:  policies,
	}
}

// HasAnyRole reports whether the claims hold at least one of the
// required roles. An empty requirement means no role restriction.
func (c Claims) HasAnyRole(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, role := range required {
		if slices.Contains(c.Roles, role) {
			return true
		}
	}
	return false
}

// HasAllPolicies reports whether the claims hold every required policy.
// An empty requirement means no policy restriction.
func (c Claims) HasAllPolicies(required []string) bool {
	for _, policy := range required {
		if !slices.Contains(c.Policies, policy) {
			return false
		}
	}
	return true
}
