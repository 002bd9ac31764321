package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/account/otp"
	"github.com/shandysiswandi/accountly/internal/pkg/authclient"
	"github.com/shandysiswandi/accountly/internal/pkg/clock"
	"github.com/shandysiswandi/accountly/internal/pkg/config"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/goroutine"
	"github.com/shandysiswandi/accountly/internal/pkg/hash"
	"github.com/shandysiswandi/accountly/internal/pkg/idempotency"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"github.com/shandysiswandi/accountly/internal/pkg/uid"
	"github.com/shandysiswandi/accountly/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type AccountCreateEvent struct {
	AccountID    string
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	PasswordHash string
}

type AccountUpdateEvent struct {
	AccountID   string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
}

type AccountDeleteEvent struct {
	AccountID string
	Email     string
}

type AccountStatusEvent struct {
	AccountID string
	Email     string
	Disabled  bool
}

type OTPRequestEvent struct {
	AccountID   string
	Email       string
	FirstName   string
	PhoneNumber string
	Purpose     entity.OTPPurpose
}

type PasswordUpdateEvent struct {
	AccountID    string
	Email        string
	PasswordHash string
}

type EmailVerifiedEvent struct {
	AccountID string
	Email     string
}

type PhoneVerifiedEvent struct {
	AccountID   string
	PhoneNumber string
}

type PhoneResetEvent struct {
	AccountID   string
	Email       string
	PhoneNumber string
}

type PhoneUpdateEvent struct {
	AccountID   string
	PhoneNumber string
}

type repoMessaging interface {
	PublishAccountCreate(ctx context.Context, msg AccountCreateEvent) error
	PublishAccountUpdate(ctx context.Context, msg AccountUpdateEvent) error
	PublishAccountDelete(ctx context.Context, msg AccountDeleteEvent) error
	PublishAccountStatus(ctx context.Context, msg AccountStatusEvent) error
	PublishOTPRequest(ctx context.Context, msg OTPRequestEvent) error
	PublishPasswordUpdate(ctx context.Context, msg PasswordUpdateEvent) error
	PublishEmailVerified(ctx context.Context, msg EmailVerifiedEvent) error
	PublishPhoneVerified(ctx context.Context, msg PhoneVerifiedEvent) error
	PublishPhoneReset(ctx context.Context, msg PhoneResetEvent) error
	PublishPhoneUpdate(ctx context.Context, msg PhoneUpdateEvent) error
	PublishCacheInvalidation(ctx context.Context, key string) error
}

type repoDB interface {
	GetAccountByID(ctx context.Context, id string) (*entity.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	GetAccountByPhone(ctx context.Context, phoneNumber string) (*entity.Account, error)
}

type repoCache interface {
	GetAccountSnapshot(ctx context.Context, email string) (*entity.Account, error)
	SetAccountSnapshot(ctx context.Context, account entity.Account, ttl time.Duration) error
}

type otpValidator interface {
	Lookup(ctx context.Context, identity, code string, purpose entity.OTPPurpose) (*otp.Record, string, error)
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoMessaging repoMessaging
	otp           otpValidator
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uuid          uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoMessaging repoMessaging
	OTP           otpValidator
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UUID          uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoMessaging: dep.RepoMessaging,
		otp:           dep.OTP,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*authclient.Claims, error) {
	clm := authclient.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*authclient.Claims, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	role := entity.RoleUser
	if clm.Admin {
		role = entity.RoleAdmin
	}

	ok, err := s.enforcer.Enforce(role, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "account_id", clm.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}

// invalidateOTP burns a consumed code without blocking the caller. The
// request may finish before the publish lands; WithoutCancel keeps the
// publish alive past the response.
func (s *Usecase) invalidateOTP(ctx context.Context, key string) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishCacheInvalidation(ctx, key); err != nil {
			slog.WarnContext(ctx, "failed to publish cache invalidation", "key", key, "error", err)
		}

		return nil
	})
}

var errInvalidOTP = goerror.NewBusiness("Invalid OTP", goerror.CodeBadRequest)
