package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/hash"
)

type fakeCache struct {
	data map[string][]byte
	err  error
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.data[key]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return data, nil
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func newValidatorForTest(t *testing.T, cache *fakeCache, now time.Time) *Validator {
	t.Helper()

	return NewValidator(cache, hash.NewHMACSHA256("test-secret"), fixedClock{now: now})
}

func seedRecord(t *testing.T, cache *fakeCache, v *Validator, rec Record, identity, code string, purpose entity.OTPPurpose) string {
	t.Helper()

	key, err := v.Key(identity, code, purpose)
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	data, err := EncodeRecord(rec)
	if err != nil {
		t.Fatalf("encode record: %v", err)
	}
	cache.data[key] = data

	return key
}

func TestValidatorLookupSuccess(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &fakeCache{data: map[string][]byte{}}
	v := newValidatorForTest(t, cache, now)

	rec := Record{
		Purpose:     entity.OTPPurposeEmailVerification.String(),
		FirstName:   "Ada",
		Email:       "ada@example.com",
		PhoneNumber: "+628123456789",
		OTP:         "482910",
		CreatedOn:   now.Add(-time.Minute),
		ExpiresOn:   now.Add(4 * time.Minute),
	}
	wantKey := seedRecord(t, cache, v, rec, "ada@example.com", "482910", entity.OTPPurposeEmailVerification)

	got, key, err := v.Lookup(context.Background(), "ada@example.com", "482910", entity.OTPPurposeEmailVerification)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != rec {
		t.Fatalf("record mismatch: %+v vs %+v", *got, rec)
	}
	if key != wantKey {
		t.Fatalf("key mismatch: %q vs %q", key, wantKey)
	}
}

func TestValidatorLookupWrongCode(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &fakeCache{data: map[string][]byte{}}
	v := newValidatorForTest(t, cache, now)

	rec := Record{
		Purpose:   entity.OTPPurposeEmailVerification.String(),
		Email:     "ada@example.com",
		OTP:       "482910",
		ExpiresOn: now.Add(4 * time.Minute),
	}
	seedRecord(t, cache, v, rec, "ada@example.com", "482910", entity.OTPPurposeEmailVerification)

	// A different code digests to a different key, so nothing is found.
	if _, _, err := v.Lookup(context.Background(), "ada@example.com", "000000", entity.OTPPurposeEmailVerification); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidatorLookupWrongPurpose(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &fakeCache{data: map[string][]byte{}}
	v := newValidatorForTest(t, cache, now)

	rec := Record{
		Purpose:   entity.OTPPurposeEmailVerification.String(),
		Email:     "ada@example.com",
		OTP:       "482910",
		ExpiresOn: now.Add(4 * time.Minute),
	}
	seedRecord(t, cache, v, rec, "ada@example.com", "482910", entity.OTPPurposeEmailVerification)

	if _, _, err := v.Lookup(context.Background(), "ada@example.com", "482910", entity.OTPPurposeForgotPassword); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidatorLookupExpiredAtBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &fakeCache{data: map[string][]byte{}}
	v := newValidatorForTest(t, cache, now)

	rec := Record{
		Purpose:   entity.OTPPurposeEmailVerification.String(),
		Email:     "ada@example.com",
		OTP:       "482910",
		ExpiresOn: now,
	}
	seedRecord(t, cache, v, rec, "ada@example.com", "482910", entity.OTPPurposeEmailVerification)

	if _, _, err := v.Lookup(context.Background(), "ada@example.com", "482910", entity.OTPPurposeEmailVerification); !errors.Is(err, ErrInvalid) {
		t.Fatalf("code expiring exactly now must be invalid, got %v", err)
	}
}

func TestValidatorLookupCacheError(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &fakeCache{err: errors.New("connection refused")}
	v := newValidatorForTest(t, cache, now)

	if _, _, err := v.Lookup(context.Background(), "ada@example.com", "482910", entity.OTPPurposeEmailVerification); !errors.Is(err, ErrInvalid) {
		t.Fatalf("cache outage must read as invalid, got %v", err)
	}
}

func TestValidatorLookupMalformedRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &fakeCache{data: map[string][]byte{}}
	v := newValidatorForTest(t, cache, now)

	key, err := v.Key("ada@example.com", "482910", entity.OTPPurposeEmailVerification)
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	cache.data[key] = []byte("{broken")

	if _, _, err := v.Lookup(context.Background(), "ada@example.com", "482910", entity.OTPPurposeEmailVerification); !errors.Is(err, ErrInvalid) {
		t.Fatalf("malformed record must read as invalid, got %v", err)
	}
}

func TestValidatorLookupRejectsEmptyInputs(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	v := newValidatorForTest(t, &fakeCache{data: map[string][]byte{}}, now)

	cases := []struct {
		identity string
		code     string
		purpose  entity.OTPPurpose
	}{
		{"", "482910", entity.OTPPurposeEmailVerification},
		{"ada@example.com", "", entity.OTPPurposeEmailVerification},
		{"ada@example.com", "482910", entity.OTPPurposeUnknown},
	}

	for _, tc := range cases {
		if _, _, err := v.Lookup(context.Background(), tc.identity, tc.code, tc.purpose); !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid for %+v, got %v", tc, err)
		}
	}
}
