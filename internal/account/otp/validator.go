package otp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/pkg/clock"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/hash"
)

// ErrInvalid is the single rejection the validator exposes. Missing records,
// unreadable cache, malformed payloads, expired codes, and wrong codes all
// collapse into it so callers cannot leak why a code was rejected.
var ErrInvalid = errors.New("otp: invalid or expired code")

// CacheGetter reads a raw value from the shared cache.
type CacheGetter interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Validator checks submitted one-time codes against cached records.
//
// The validator fails closed: a cache outage makes every code invalid, it
// never makes a bad code valid.
type Validator struct {
	cache CacheGetter
	hmac  hash.Hash
	clock clock.Clocker
}

// NewValidator constructs a Validator.
func NewValidator(cache CacheGetter, hmac hash.Hash, clk clock.Clocker) *Validator {
	return &Validator{cache: cache, hmac: hmac, clock: clk}
}

// Key rebuilds the cache key for a submitted code.
func (v *Validator) Key(identity, code string, purpose entity.OTPPurpose) (string, error) {
	digest, err := v.hmac.Hash(code)
	if err != nil {
		return "", err
	}

	return BuildKey(identity, string(digest), purpose.String()), nil
}

// Lookup validates the code for the identity and purpose. On success it
// returns the cached record and the cache key so the caller can invalidate
// it. Every rejection is ErrInvalid.
//
// Lookup does not consume the code. Until the caller's invalidation reaches
// the cache owner there is a short window in which the same code validates
// again; the window is bounded by the record's expiry.
func (v *Validator) Lookup(ctx context.Context, identity, code string, purpose entity.OTPPurpose) (*Record, string, error) {
	if identity == "" || code == "" || !purpose.IsValid() {
		return nil, "", ErrInvalid
	}

	key, err := v.Key(identity, code, purpose)
	if err != nil {
		slog.ErrorContext(ctx, "failed to digest otp code", "identity", identity, "error", err)
		return nil, "", ErrInvalid
	}

	data, err := v.cache.Get(ctx, key)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, "", ErrInvalid
	}
	if err != nil {
		// Unreachable cache reads as not found.
		slog.WarnContext(ctx, "otp cache read failed, treating code as invalid", "error", err)
		return nil, "", ErrInvalid
	}

	record, err := DecodeRecord(data)
	if err != nil {
		slog.WarnContext(ctx, "otp record is malformed, treating code as invalid", "key", key, "error", err)
		return nil, "", ErrInvalid
	}

	if record.Purpose != purpose.String() {
		return nil, "", ErrInvalid
	}

	if record.Expired(v.clock.Now()) {
		return nil, "", ErrInvalid
	}

	return &record, key, nil
}
