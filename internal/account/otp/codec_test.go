package otp

import (
	"errors"
	"testing"
	"time"
)

func TestBuildKey(t *testing.T) {
	got := BuildKey("ada@example.com", "abc123", "email_verification")
	want := "otp:ada@example.com-abc123-email_verification"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEncodeDecodeRecord(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := Record{
		Purpose:     "phone_verification",
		FirstName:   "Ada",
		Email:       "ada@example.com",
		PhoneNumber: "+628123456789",
		OTP:         "482910",
		CreatedOn:   created,
		ExpiresOn:   created.Add(5 * time.Minute),
	}

	data, err := EncodeRecord(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != rec {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, rec)
	}
}

func TestDecodeRecordMalformed(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		{},
		[]byte("not-json"),
		[]byte(`{"expires_on": "garbage"}`),
		[]byte(`{}`),
		[]byte(`{"otp":"482910"}`),
		[]byte(`{"purpose":"email_verification","otp":"482910","expires_on":"2026-03-01T10:05:00Z"}`),
		[]byte(`{"purpose":"email_verification","email":"ada@example.com","expires_on":"2026-03-01T10:05:00Z"}`),
		[]byte(`{"purpose":"email_verification","email":"ada@example.com","otp":"482910"}`),
	} {
		if _, err := DecodeRecord(data); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("expected ErrMalformedRecord for %q, got %v", data, err)
		}
	}
}

func TestRecordExpired(t *testing.T) {
	expires := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	rec := Record{ExpiresOn: expires}

	if rec.Expired(expires.Add(-time.Second)) {
		t.Error("record should be valid just before expiry")
	}
	if !rec.Expired(expires) {
		t.Error("record should be expired exactly at the expiry instant")
	}
	if !rec.Expired(expires.Add(time.Second)) {
		t.Error("record should be expired after the expiry instant")
	}
}
