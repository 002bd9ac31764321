package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const snapshotKeyPrefix = "account:email:"

// Cache reads OTP records and account snapshots from redis.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("account.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return goerror.ErrNotFound
	}

	return err
}

// Get returns the raw bytes stored under key, or goerror.ErrNotFound.
func (c *Cache) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := c.startSpan(ctx, "Get")
	defer func() { c.endSpan(span, err) }()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, c.mapError(err)
	}

	return data, nil
}

// GetAccountSnapshot returns the cached account snapshot keyed by email.
func (c *Cache) GetAccountSnapshot(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := c.startSpan(ctx, "GetAccountSnapshot")
	defer func() { c.endSpan(span, err) }()

	data, err := c.client.Get(ctx, snapshotKeyPrefix+email).Bytes()
	if err != nil {
		return nil, c.mapError(err)
	}

	var account entity.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// SetAccountSnapshot stores the account snapshot keyed by email.
func (c *Cache) SetAccountSnapshot(ctx context.Context, account entity.Account, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "SetAccountSnapshot")
	defer func() { c.endSpan(span, err) }()

	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, snapshotKeyPrefix+account.Email, data, ttl).Err()
}
