package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/account/otp"
	"github.com/shandysiswandi/accountly/internal/pkg/authclient"
	"github.com/shandysiswandi/accountly/internal/pkg/config"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/goroutine"
	"github.com/shandysiswandi/accountly/internal/pkg/idempotency"
	"github.com/shandysiswandi/accountly/internal/pkg/instrument"
	"github.com/shandysiswandi/accountly/internal/pkg/validator"
)

type fakeDB struct {
	byID    map[string]entity.Account
	byEmail map[string]entity.Account
	byPhone map[string]entity.Account
	err     error
}

func (f *fakeDB) get(m map[string]entity.Account, key string) (*entity.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	account, ok := m[key]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &account, nil
}

func (f *fakeDB) GetAccountByID(_ context.Context, id string) (*entity.Account, error) {
	return f.get(f.byID, id)
}

func (f *fakeDB) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	return f.get(f.byEmail, email)
}

func (f *fakeDB) GetAccountByPhone(_ context.Context, phoneNumber string) (*entity.Account, error) {
	return f.get(f.byPhone, phoneNumber)
}

type fakeCache struct {
	snapshots map[string]entity.Account
	getErr    error
	setErr    error
	warmed    []string
}

func (f *fakeCache) GetAccountSnapshot(_ context.Context, email string) (*entity.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	account, ok := f.snapshots[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &account, nil
}

func (f *fakeCache) SetAccountSnapshot(_ context.Context, account entity.Account, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.warmed = append(f.warmed, account.Email)
	return nil
}

type fakeMessaging struct {
	err error

	mu            sync.Mutex
	creates       []AccountCreateEvent
	updates       []AccountUpdateEvent
	deletes       []AccountDeleteEvent
	statuses      []AccountStatusEvent
	otpRequests   []OTPRequestEvent
	passwords     []PasswordUpdateEvent
	emailVerified []EmailVerifiedEvent
	phoneVerified []PhoneVerifiedEvent
	phoneResets   []PhoneResetEvent
	phoneUpdates  []PhoneUpdateEvent
	invalidations []string
}

func (f *fakeMessaging) PublishAccountCreate(_ context.Context, msg AccountCreateEvent) error {
	if f.err != nil {
		return f.err
	}
	f.creates = append(f.creates, msg)
	return nil
}

func (f *fakeMessaging) PublishAccountUpdate(_ context.Context, msg AccountUpdateEvent) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, msg)
	return nil
}

func (f *fakeMessaging) PublishAccountDelete(_ context.Context, msg AccountDeleteEvent) error {
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, msg)
	return nil
}

func (f *fakeMessaging) PublishAccountStatus(_ context.Context, msg AccountStatusEvent) error {
	if f.err != nil {
		return f.err
	}
	f.statuses = append(f.statuses, msg)
	return nil
}

func (f *fakeMessaging) PublishOTPRequest(_ context.Context, msg OTPRequestEvent) error {
	if f.err != nil {
		return f.err
	}
	f.otpRequests = append(f.otpRequests, msg)
	return nil
}

func (f *fakeMessaging) PublishPasswordUpdate(_ context.Context, msg PasswordUpdateEvent) error {
	if f.err != nil {
		return f.err
	}
	f.passwords = append(f.passwords, msg)
	return nil
}

func (f *fakeMessaging) PublishEmailVerified(_ context.Context, msg EmailVerifiedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.emailVerified = append(f.emailVerified, msg)
	return nil
}

func (f *fakeMessaging) PublishPhoneVerified(_ context.Context, msg PhoneVerifiedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.phoneVerified = append(f.phoneVerified, msg)
	return nil
}

func (f *fakeMessaging) PublishPhoneReset(_ context.Context, msg PhoneResetEvent) error {
	if f.err != nil {
		return f.err
	}
	f.phoneResets = append(f.phoneResets, msg)
	return nil
}

func (f *fakeMessaging) PublishPhoneUpdate(_ context.Context, msg PhoneUpdateEvent) error {
	if f.err != nil {
		return f.err
	}
	f.phoneUpdates = append(f.phoneUpdates, msg)
	return nil
}

// PublishCacheInvalidation runs on the goroutine manager, so it locks.
func (f *fakeMessaging) PublishCacheInvalidation(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidations = append(f.invalidations, key)
	return nil
}

func (f *fakeMessaging) invalidatedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.invalidations...)
}

type fakeOTP struct {
	record *otp.Record
	key    string
	err    error
}

func (f *fakeOTP) Lookup(context.Context, string, string, entity.OTPPurpose) (*otp.Record, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.record, f.key, nil
}

type passIdempotency struct {
	err error
}

func (f *passIdempotency) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeHash struct {
	hashErr error
}

func (f *fakeHash) Hash(str string) ([]byte, error) {
	if f.hashErr != nil {
		return nil, f.hashErr
	}
	return []byte("hashed:" + str), nil
}

func (f *fakeHash) Verify(hashed, str string) bool {
	return hashed == "hashed:"+str
}

type staticUUID struct {
	id string
}

func (s staticUUID) Generate() string { return s.id }

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

func newEnforcerForTest(t *testing.T) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		t.Fatalf("build casbin model: %v", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("build casbin enforcer: %v", err)
	}

	policies := [][]string{
		{entity.RoleAdmin, "accounts", "delete"},
		{entity.RoleAdmin, "accounts", "disable"},
		{entity.RoleAdmin, "accounts", "enable"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		t.Fatalf("add casbin policies: %v", err)
	}

	return e
}

type fixture struct {
	db        *fakeDB
	cache     *fakeCache
	messaging *fakeMessaging
	otp       *fakeOTP
	idemp     *passIdempotency
	goroutine *goroutine.Manager
	uc        *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  account:\n    snapshot_ttl_minutes: 15\n"))
	if err != nil {
		t.Fatalf("build config: %v", err)
	}

	f := &fixture{
		db: &fakeDB{
			byID:    map[string]entity.Account{},
			byEmail: map[string]entity.Account{},
			byPhone: map[string]entity.Account{},
		},
		cache:     &fakeCache{snapshots: map[string]entity.Account{}},
		messaging: &fakeMessaging{},
		otp:       &fakeOTP{},
		idemp:     &passIdempotency{},
		goroutine: goroutine.NewManager(4),
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoCache:     f.cache,
		RepoMessaging: f.messaging,
		OTP:           f.otp,
		Idempotency:   f.idemp,
		Validator:     v,
		Config:        cfg,
		Bcrypt:        &fakeHash{},
		UUID:          staticUUID{id: "0199c2a0-0000-7000-8000-000000000001"},
		Clock:         fixedClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		Instrument:    instrument.NewNoop(),
		Enforcer:      newEnforcerForTest(t),
		Goroutine:     f.goroutine,
	})

	return f
}

func (f *fixture) seedAccount(account entity.Account) {
	f.db.byID[account.ID] = account
	f.db.byEmail[account.Email] = account
	f.db.byPhone[account.PhoneNumber] = account
}

func testAccount() entity.Account {
	return entity.Account{
		ID:          "0199c2a0-0000-7000-8000-0000000000aa",
		Email:       "jane.doe@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+12025550123",
		Password:    "hashed:OldPass123",
	}
}

func userCtx(account entity.Account) context.Context {
	return authclient.SetAuth(context.Background(), authclient.Claims{
		Subject: account.ID,
		ID:      account.ID,
		Email:   account.Email,
	})
}

func adminCtx() context.Context {
	return authclient.SetAuth(context.Background(), authclient.Claims{
		Subject: "0199c2a0-0000-7000-8000-0000000000ad",
		ID:      "0199c2a0-0000-7000-8000-0000000000ad",
		Email:   "admin@example.com",
		Admin:   true,
	})
}

func assertBusinessError(t *testing.T, err error, code goerror.Code, msg string) {
	t.Helper()

	var ge *goerror.Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected structured error, got %v", err)
	}
	if ge.Code() != code {
		t.Fatalf("expected code %v, got %v", code, ge.Code())
	}
	if msg != "" && ge.Msg() != msg {
		t.Fatalf("expected message %q, got %q", msg, ge.Msg())
	}
}
