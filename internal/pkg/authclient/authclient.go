package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingBearer is returned when the Authorization header carries no
	// bearer token.
	ErrMissingBearer = errors.New("authclient: missing bearer token")

	// ErrCredential is returned when the authority rejects the token.
	ErrCredential = errors.New("authclient: invalid credentials")
)

const bearerPrefix = "Bearer "

// Claims is the identity the token authority vouches for.
type Claims struct {
	// Issuer is the token issuer value.
	Issuer string `json:"iss"`
	// Audience is the intended token audience.
	Audience string `json:"aud"`
	// Subject is the authenticated principal identifier.
	Subject string `json:"sub"`
	// FirstName is the account holder's first name.
	FirstName string `json:"firstname"`
	// LastName is the account holder's last name.
	LastName string `json:"lastname"`
	// Email is the account holder's email address.
	Email string `json:"email"`
	// ID is the account identifier.
	ID string `json:"id"`
	// Admin reports whether the principal has administrative rights.
	Admin bool `json:"admin"`
	// IssuedAt is when the token was issued.
	IssuedAt *jwt.NumericDate `json:"iat,omitempty"`
	// ExpiresAt is when the token expires.
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
}

// Verifier checks a bearer token and returns the claims it carries.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// ExtractBearer returns the token from an Authorization header value.
func ExtractBearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingBearer
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrMissingBearer
	}

	return token, nil
}

// Config defines the inputs for building an HTTP verifier.
type Config struct {
	// BaseURL is the token authority endpoint, including path.
	BaseURL string
	// Timeout bounds each verification call.
	Timeout time.Duration
	// Client overrides the default HTTP client.
	Client *http.Client
}

// HTTPVerifier verifies tokens by forwarding them to the token authority.
type HTTPVerifier struct {
	baseURL string
	client  *http.Client
}

// NewHTTPVerifier constructs an HTTPVerifier from the config.
func NewHTTPVerifier(cfg Config) *HTTPVerifier {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPVerifier{
		baseURL: cfg.BaseURL,
		client:  client,
	}
}

// Verify forwards the token to the authority. Any response at or above 400
// means the credentials are rejected.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL, nil)
	if err != nil {
		return Claims{}, fmt.Errorf("authclient: build request: %w", err)
	}
	req.Header.Set("Authorization", bearerPrefix+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return Claims{}, fmt.Errorf("authclient: call authority: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return Claims{}, ErrCredential
	}

	var claims Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return Claims{}, fmt.Errorf("authclient: decode claims: %w", err)
	}

	return claims, nil
}

type authContextKey struct{}

// GetAuth returns the claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(authContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, authContextKey{}, clm)
}
