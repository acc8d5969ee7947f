package auth

import (
	"net/http"
	"strings"
)

// CookieName is the well-known cookie carrying a session token.
const CookieName = "auth"

const bearerPrefix = "Bearer "

// CredentialSource tags where in the request a token was found.
type CredentialSource int

const (
	SourceHeader CredentialSource = iota
	SourceCookie
)

func (s CredentialSource) String() string {
	switch s {
	case SourceHeader:
		return "header"
	case SourceCookie:
		return "cookie"
	}
	return "unknown"
}

// Credential is a raw token string together with its source.
type Credential struct {
	Source CredentialSource
	Token  string
}

// extractors are tried in order; the first one yielding a non-empty
// token wins. The order is fixed so a stale cookie can never shadow a
// fresh bearer token supplied by an API client.
var extractors = []func(*http.Request) (Credential, bool){
	fromBearerHeader,
	fromCookie,
}

// ExtractCredential locates a candidate token in the request. Absence
// is not an error; the middleware reports it as missing credentials.
func ExtractCredential(r *http.Request) (Credential, bool) {
	for _, extract := range extractors {
		if cred, ok := extract(r); ok {
			return cred, true
		}
	}
	return Credential{}, false
}

func fromBearerHeader(r *http.Request) (Credential, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
	if !ok || token == "" {
		return Credential{}, false
	}
	return Credential{Source: SourceHeader, Token: token}, true
}

func fromCookie(r *http.Request) (Credential, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Credential{}, false
	}
	return Credential{Source: SourceCookie, Token: cookie.Value}, true
}
