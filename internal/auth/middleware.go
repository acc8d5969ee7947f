package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Requirement is the role/policy set a route declares statically.
// Roles are OR-combined (any one suffices), policies AND-combined (all
// must be held). An empty requirement gates on authentication only.
type Requirement struct {
	Roles    []string
	Policies []string
}

// Middleware authenticates requests and enforces per-route requirements.
type Middleware struct {
	logger *slog.Logger
	codec  *Codec
}

func NewMiddleware(logger *slog.Logger, codec *Codec) *Middleware {
	return &Middleware{
		logger: logger,
		codec:  codec,
	}
}

// Authenticate runs extraction and decoding without any role or policy
// gating. Handlers that only need the caller's identity use it directly
// instead of wrapping themselves in Require.
func (m *Middleware) Authenticate(r *http.Request) (Claims, error) {
	cred, ok := ExtractCredential(r)
	if !ok {
		return Claims{}, ErrMissingCredentials
	}

	claims, err := m.codec.Decode(cred.Token)
	if err != nil {
		m.logger.DebugContext(r.Context(), "token rejected", "source", cred.Source.String(), "err", err.Error())
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// Require wraps a handler with extract -> decode -> evaluate. On
// success the decoded claims are attached to the request context for
// downstream handlers; otherwise the request is rejected with 401 for
// missing or invalid credentials and 403 for an unmet requirement.
func (m *Middleware) Require(req Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := m.Authenticate(r)
			if err != nil {
				if errors.Is(err, ErrMissingCredentials) {
					writeError(w, http.StatusUnauthorized, "missing credentials")
					return
				}
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if !claims.HasAnyRole(req.Roles) || !claims.HasAllPolicies(req.Policies) {
				m.logger.InfoContext(r.Context(), "request forbidden",
					"subject", claims.Subject,
					"required_roles", req.Roles,
					"required_policies", req.Policies,
				)
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
