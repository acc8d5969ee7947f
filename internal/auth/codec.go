package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the wire form of Claims.
type tokenClaims struct {
	Roles    []string `json:"roles,omitempty"`
	Policies []string `json:"policies,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HS256 secret.
// It is pure given a fixed secret and safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes claims into a signed token.
func (c *Codec) Encode(claims Claims) (string, error) {
	if claims.Subject == "" {
		return "", fmt.Errorf("encode token: empty subject")
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		return "", fmt.Errorf("encode token: expiry %d not after issuance %d", claims.ExpiresAt, claims.IssuedAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Roles:    claims.Roles,
		Policies: claims.Policies,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(time.Unix(claims.IssuedAt, 0)),
			ExpiresAt: jwt.NewNumericDate(time.Unix(claims.ExpiresAt, 0)),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature, structure and expiry of a token and
// returns the claims it carries. Every failure wraps ErrInvalidToken so
// a caller can't tell a forged signature from an expired token; the
// underlying cause stays in the error chain for logging.
func (c *Codec) Decode(token string) (Claims, error) {
	parsed := &tokenClaims{}
	t, err := jwt.ParseWithClaims(token, parsed,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !t.Valid || parsed.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{
		Subject:   parsed.Subject,
		ExpiresAt: parsed.ExpiresAt.Unix(),
		Roles:     parsed.Roles,
		Policies:  parsed.Policies,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Unix()
	}
	return claims, nil
}
