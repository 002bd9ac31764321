package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shandysiswandi/accountly/internal/account/usecase"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"github.com/shandysiswandi/accountly/internal/pkg/messaging"
)

type fakeClient struct {
	failures int
	attempts int
	messages []messaging.OutgoingMessage
	topics   []string
}

func (f *fakeClient) Publish(_ context.Context, destination string, msg messaging.OutgoingMessage) (messaging.PublishResult, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return messaging.PublishResult{}, errors.New("broker unavailable")
	}

	f.messages = append(f.messages, msg)
	f.topics = append(f.topics, destination)

	return messaging.PublishResult{Topic: destination}, nil
}

func (f *fakeClient) Close() error { return nil }

type staticEID struct{}

func (staticEID) Generate() int64 { return 42 }

func TestPublishAccountCreateCarriesHeaders(t *testing.T) {
	client := &fakeClient{}
	m := NewMessaging(client, instrument.NewNoop(), staticEID{})

	err := m.PublishAccountCreate(context.Background(), usecase.AccountCreateEvent{
		AccountID: "acc-1",
		Email:     "jane.doe@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(client.messages))
	}
	if client.topics[0] != "account_create" {
		t.Fatalf("unexpected destination %q", client.topics[0])
	}

	var payload map[string]any
	if err := json.Unmarshal(client.messages[0].Body, &payload); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if payload["account_id"] != "acc-1" {
		t.Fatalf("unexpected payload %v", payload)
	}

	headers := map[string]string{}
	for _, h := range client.messages[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers["eID"] != "42" {
		t.Fatalf("expected event id header, got %v", headers)
	}
	if _, ok := headers["cID"]; !ok {
		t.Fatalf("expected correlation id header, got %v", headers)
	}
}

func TestPublishCacheInvalidationRetries(t *testing.T) {
	client := &fakeClient{failures: 2}
	m := NewMessaging(client, instrument.NewNoop(), staticEID{})

	if err := m.PublishCacheInvalidation(context.Background(), "otp:key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", client.attempts)
	}
	if len(client.messages) != 1 {
		t.Fatalf("expected 1 delivered message, got %d", len(client.messages))
	}
}

func TestPublishCacheInvalidationTwiceIsSafe(t *testing.T) {
	client := &fakeClient{}
	m := NewMessaging(client, instrument.NewNoop(), staticEID{})

	for range 2 {
		if err := m.PublishCacheInvalidation(context.Background(), "otp:key"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(client.messages) != 2 {
		t.Fatalf("expected both publishes delivered, got %d", len(client.messages))
	}
	for _, topic := range client.topics {
		if topic != "cache_invalidation" {
			t.Fatalf("unexpected destination %q", topic)
		}
	}
}

func TestPublishCacheInvalidationGivesUpAfterMaxRetries(t *testing.T) {
	client := &fakeClient{failures: 100}
	m := NewMessaging(client, instrument.NewNoop(), staticEID{})

	if err := m.PublishCacheInvalidation(context.Background(), "otp:key"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}

	if client.attempts != int(invalidationMaxRetries)+1 {
		t.Fatalf("expected %d attempts, got %d", invalidationMaxRetries+1, client.attempts)
	}
}
