// Package otp validates one-time codes stored by the upstream issuer in the
// shared cache. This service never issues codes, it only checks and burns
// them.
package otp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedRecord is returned when a cached value cannot be decoded.
// Callers treat it the same as a missing record.
var ErrMalformedRecord = errors.New("otp: malformed record")

const keyPrefix = "otp:"

// Record is the cached payload written by the code issuer.
type Record struct {
	Purpose     string    `json:"purpose"`
	FirstName   string    `json:"firstname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	OTP         string    `json:"otp"`
	CreatedOn   time.Time `json:"created_on"`
	ExpiresOn   time.Time `json:"expires_on"`
}

// Expired reports whether the record is no longer usable at the given time.
// The expiry instant itself counts as expired.
func (r Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresOn)
}

// BuildKey composes the cache key for a code. The digest is a deterministic
// hash of the plaintext code so the key can be rebuilt from a submitted code
// without storing the plaintext.
func BuildKey(identity, digest, purpose string) string {
	return fmt.Sprintf("%s%s-%s-%s", keyPrefix, identity, digest, purpose)
}

// EncodeRecord serializes a record for cache storage.
func EncodeRecord(r Record) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeRecord parses a cached value. Any decode failure, including empty
// input or a record missing its purpose, code, identity, or expiry, yields
// ErrMalformedRecord.
func DecodeRecord(data []byte) (Record, error) {
	if len(data) == 0 {
		return Record{}, ErrMalformedRecord
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	switch {
	case r.Purpose == "":
		return Record{}, fmt.Errorf("%w: missing purpose", ErrMalformedRecord)
	case r.OTP == "":
		return Record{}, fmt.Errorf("%w: missing otp", ErrMalformedRecord)
	case r.Email == "" && r.PhoneNumber == "":
		return Record{}, fmt.Errorf("%w: missing identity", ErrMalformedRecord)
	case r.ExpiresOn.IsZero():
		return Record{}, fmt.Errorf("%w: missing expiry", ErrMalformedRecord)
	}

	return r, nil
}
