package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/accountly/internal/account/usecase"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"github.com/shandysiswandi/accountly/internal/pkg/messaging"
	"github.com/shandysiswandi/accountly/internal/pkg/uid"
	"github.com/shandysiswandi/accountly/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const (
	keyOfCorrelationID string = "cID"
	keyOfEventID       string = "eID"
)

const invalidationMaxRetries uint64 = 5

// Messaging publishes account domain events to the bus.
type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
	eid    uid.NumberID
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation, eid uid.NumberID) *Messaging {
	return &Messaging{client: client, ins: ins, eid: eid}
}

func (m *Messaging) publish(ctx context.Context, name, destination string, payload any) error {
	ctx, span := m.ins.Tracer("account.outbound.mq").Start(ctx, name)
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	headers := []messaging.Header{
		{Key: keyOfCorrelationID, Value: []byte(instrument.GetCorrelationID(ctx))},
		{Key: keyOfEventID, Value: []byte(strconv.FormatInt(m.eid.Generate(), 10))},
	}

	if _, err := m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:    body,
		Headers: headers,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (m *Messaging) PublishAccountCreate(ctx context.Context, msg usecase.AccountCreateEvent) error {
	return m.publish(ctx, "PublishAccountCreate", event.AccountCreateDestination, event.AccountCreateMessage{
		AccountID:    msg.AccountID,
		Email:        msg.Email,
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
		PhoneNumber:  msg.PhoneNumber,
		PasswordHash: msg.PasswordHash,
	})
}

func (m *Messaging) PublishAccountUpdate(ctx context.Context, msg usecase.AccountUpdateEvent) error {
	return m.publish(ctx, "PublishAccountUpdate", event.AccountUpdateDestination, event.AccountUpdateMessage{
		AccountID:   msg.AccountID,
		Email:       msg.Email,
		FirstName:   msg.FirstName,
		LastName:    msg.LastName,
		PhoneNumber: msg.PhoneNumber,
	})
}

func (m *Messaging) PublishAccountDelete(ctx context.Context, msg usecase.AccountDeleteEvent) error {
	return m.publish(ctx, "PublishAccountDelete", event.AccountDeleteDestination, event.AccountDeleteMessage{
		AccountID: msg.AccountID,
		Email:     msg.Email,
	})
}

func (m *Messaging) PublishAccountStatus(ctx context.Context, msg usecase.AccountStatusEvent) error {
	return m.publish(ctx, "PublishAccountStatus", event.AccountStatusDestination, event.AccountStatusMessage{
		AccountID: msg.AccountID,
		Email:     msg.Email,
		Disabled:  msg.Disabled,
	})
}

func (m *Messaging) PublishOTPRequest(ctx context.Context, msg usecase.OTPRequestEvent) error {
	return m.publish(ctx, "PublishOTPRequest", event.OTPRequestDestination, event.OTPRequestMessage{
		AccountID:   msg.AccountID,
		Email:       msg.Email,
		FirstName:   msg.FirstName,
		PhoneNumber: msg.PhoneNumber,
		Purpose:     msg.Purpose.String(),
	})
}

func (m *Messaging) PublishPasswordUpdate(ctx context.Context, msg usecase.PasswordUpdateEvent) error {
	return m.publish(ctx, "PublishPasswordUpdate", event.PasswordUpdateDestination, event.PasswordUpdateMessage{
		AccountID:    msg.AccountID,
		Email:        msg.Email,
		PasswordHash: msg.PasswordHash,
	})
}

func (m *Messaging) PublishEmailVerified(ctx context.Context, msg usecase.EmailVerifiedEvent) error {
	return m.publish(ctx, "PublishEmailVerified", event.EmailVerifiedDestination, event.EmailVerifiedMessage{
		AccountID: msg.AccountID,
		Email:     msg.Email,
	})
}

func (m *Messaging) PublishPhoneVerified(ctx context.Context, msg usecase.PhoneVerifiedEvent) error {
	return m.publish(ctx, "PublishPhoneVerified", event.PhoneVerifiedDestination, event.PhoneVerifiedMessage{
		AccountID:   msg.AccountID,
		PhoneNumber: msg.PhoneNumber,
	})
}

func (m *Messaging) PublishPhoneReset(ctx context.Context, msg usecase.PhoneResetEvent) error {
	return m.publish(ctx, "PublishPhoneReset", event.PhoneResetDestination, event.PhoneResetMessage{
		AccountID:   msg.AccountID,
		Email:       msg.Email,
		PhoneNumber: msg.PhoneNumber,
	})
}

func (m *Messaging) PublishPhoneUpdate(ctx context.Context, msg usecase.PhoneUpdateEvent) error {
	return m.publish(ctx, "PublishPhoneUpdate", event.PhoneUpdateDestination, event.PhoneUpdateMessage{
		AccountID:   msg.AccountID,
		PhoneNumber: msg.PhoneNumber,
	})
}

// PublishCacheInvalidation burns an OTP cache key. The publish is retried
// with capped fibonacci backoff; duplicate invalidations of one key are
// harmless, so at-least-once is the right contract here.
func (m *Messaging) PublishCacheInvalidation(ctx context.Context, key string) error {
	backoff := retry.WithMaxRetries(invalidationMaxRetries, retry.NewFibonacci(100*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := m.publish(ctx, "PublishCacheInvalidation", event.CacheInvalidateDestination, event.CacheInvalidateMessage{
			Key: key,
		})
		if err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})
}
