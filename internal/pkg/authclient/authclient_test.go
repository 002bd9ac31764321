package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "no prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "prefix only", header: "Bearer ", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractBearer(tc.header)
			if tc.wantErr {
				if !errors.Is(err, ErrMissingBearer) {
					t.Fatalf("expected ErrMissingBearer, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestHTTPVerifierVerify(t *testing.T) {
	now := time.Now()
	issued := Claims{
		Issuer:    "https://auth.example.com",
		Audience:  "accounts",
		Subject:   "user-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		ID:        "1",
		Admin:     true,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(issued)
	}))
	defer srv.Close()

	verifier := NewHTTPVerifier(Config{BaseURL: srv.URL, Timeout: time.Second})

	claims, err := verifier.Verify(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.Email != "ada@example.com" {
		t.Errorf("expected email ada@example.com, got %q", claims.Email)
	}
	if !claims.Admin {
		t.Error("expected admin claim to be true")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(now) {
		t.Error("expected exp claim after now")
	}

	_, err = verifier.Verify(context.Background(), "bad-token")
	if !errors.Is(err, ErrCredential) {
		t.Fatalf("expected ErrCredential, got %v", err)
	}
}

func TestHTTPVerifierAuthorityUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close()

	verifier := NewHTTPVerifier(Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := verifier.Verify(context.Background(), "any")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, ErrCredential) {
		t.Fatal("transport failure must not look like a credential rejection")
	}
}

func TestAuthContext(t *testing.T) {
	if got := GetAuth(context.Background()); got != nil {
		t.Fatalf("expected nil claims, got %+v", got)
	}

	ctx := SetAuth(context.Background(), Claims{Subject: "user-1", Admin: true})
	got := GetAuth(ctx)
	if got == nil {
		t.Fatal("expected claims in context")
	}
	if got.Subject != "user-1" || !got.Admin {
		t.Fatalf("unexpected claims: %+v", got)
	}
}
