package auth

import (
	"testing"
	"time"
)

func TestHasAnyRole(t *testing.T) {
	claims := Claims{Roles: []string{"editor"}}

	if !claims.HasAnyRole([]string{"admin", "editor"}) {
		t.Fatal("expected match when one required role is held")
	}
	if claims.HasAnyRole([]string{"admin"}) {
		t.Fatal("expected no match when no required role is held")
	}
	if !claims.HasAnyRole(nil) {
		t.Fatal("expected empty requirement to mean no restriction")
	}
}

func TestHasAnyRoleWithEmptyClaims(t *testing.T) {
	claims := Claims{}

	if claims.HasAnyRole([]string{"admin"}) {
		t.Fatal("expected empty claim roles to deny a non-empty requirement")
	}
	if !claims.HasAnyRole(nil) {
		t.Fatal("expected empty requirement to allow even empty claim roles")
	}
}

func TestHasAllPolicies(t *testing.T) {
	claims := Claims{Policies: []string{"read"}}

	if claims.HasAllPolicies([]string{"read", "write"}) {
		t.Fatal("expected missing policy to deny")
	}
	if !claims.HasAllPolicies([]string{"read"}) {
		t.Fatal("expected held policy to allow")
	}
	if !claims.HasAllPolicies(nil) {
		t.Fatal("expected empty requirement to mean no restriction")
	}
}

func TestNewClaimsAppliesTTL(t *testing.T) {
	claims := NewClaims("alice", time.Hour, nil, nil)

	if claims.Subject != "alice" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if got := claims.ExpiresAt - claims.IssuedAt; got != 3600 {
		t.Fatalf("expected 3600s lifetime, got %d", got)
	}
}

func TestNewClaimsDefaultsTTL(t *testing.T) {
	claims := NewClaims("alice", 0, nil, nil)

	if got := claims.ExpiresAt - claims.IssuedAt; got != int64(DefaultTTL/time.Second) {
		t.Fatalf("expected default lifetime, got %ds", got)
	}
}
