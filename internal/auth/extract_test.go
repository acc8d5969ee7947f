package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractCredentialFromBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	cred, ok := ExtractCredential(req)
	if !ok {
		t.Fatal("expected a credential")
	}
	if cred.Source != SourceHeader {
		t.Fatalf("expected header source, got %v", cred.Source)
	}
	if cred.Token != "header-token" {
		t.Fatalf("unexpected token: %q", cred.Token)
	}
}

func TestExtractCredentialFromCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})

	cred, ok := ExtractCredential(req)
	if !ok {
		t.Fatal("expected a credential")
	}
	if cred.Source != SourceCookie {
		t.Fatalf("expected cookie source, got %v", cred.Source)
	}
	if cred.Token != "cookie-token" {
		t.Fatalf("unexpected token: %q", cred.Token)
	}
}

func TestExtractCredentialHeaderTakesPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})

	cred, ok := ExtractCredential(req)
	if !ok {
		t.Fatal("expected a credential")
	}
	if cred.Source != SourceHeader || cred.Token != "header-token" {
		t.Fatalf("expected header token to win, got %+v", cred)
	}
}

func TestExtractCredentialAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ExtractCredential(req); ok {
		t.Fatal("expected no credential")
	}
}

func TestExtractCredentialIgnoresNonBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})

	cred, ok := ExtractCredential(req)
	if !ok {
		t.Fatal("expected cookie credential")
	}
	if cred.Source != SourceCookie {
		t.Fatalf("expected cookie source when header is not bearer, got %v", cred.Source)
	}
}

func TestExtractCredentialStripsSinglePrefix(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer Bearer twice")

	cred, ok := ExtractCredential(req)
	if !ok {
		t.Fatal("expected a credential")
	}
	if cred.Token != "Bearer twice" {
		t.Fatalf("expected exactly one prefix stripped, got %q", cred.Token)
	}
}

func TestExtractCredentialEmptyBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")

	if _, ok := ExtractCredential(req); ok {
		t.Fatal("expected no credential for empty bearer token")
	}
}
