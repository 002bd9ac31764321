package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/idempotency"
)

func validCreateInput() AccountCreateInput {
	return AccountCreateInput{
		Email:       "jane.doe@example.com",
		Password:    "Secret123456",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+12025550123",
	}
}

func TestAccountCreateSuccess(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.AccountCreate(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccountID == "" {
		t.Fatal("expected a generated account id")
	}

	if len(f.messaging.creates) != 1 {
		t.Fatalf("expected 1 create event, got %d", len(f.messaging.creates))
	}
	evt := f.messaging.creates[0]
	if evt.Email != "jane.doe@example.com" {
		t.Fatalf("unexpected event email %q", evt.Email)
	}
	if evt.PasswordHash != "hashed:Secret123456" {
		t.Fatalf("event must carry the hash, got %q", evt.PasswordHash)
	}

	if len(f.cache.warmed) != 1 || f.cache.warmed[0] != "jane.doe@example.com" {
		t.Fatalf("expected snapshot warmed for the new email, got %v", f.cache.warmed)
	}
}

func TestAccountCreateNormalizesEmail(t *testing.T) {
	f := newFixture(t)

	in := validCreateInput()
	in.Email = "  Jane.Doe@Example.COM "

	if _, err := f.uc.AccountCreate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.messaging.creates[0].Email; got != "jane.doe@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", got)
	}
}

func TestAccountCreateInvalidInput(t *testing.T) {
	f := newFixture(t)

	in := validCreateInput()
	in.Password = "short"

	if _, err := f.uc.AccountCreate(context.Background(), in); err == nil {
		t.Fatal("expected validation error")
	}
	if len(f.messaging.creates) != 0 {
		t.Fatal("no event should be published on invalid input")
	}
}

func TestAccountCreateDuplicateEmailInProjection(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(testAccount())

	_, err := f.uc.AccountCreate(context.Background(), validCreateInput())
	assertBusinessError(t, err, goerror.CodeConflict, "Email already registered")
}

func TestAccountCreateDuplicateEmailInSnapshot(t *testing.T) {
	f := newFixture(t)
	account := testAccount()
	f.cache.snapshots[account.Email] = account

	_, err := f.uc.AccountCreate(context.Background(), validCreateInput())
	assertBusinessError(t, err, goerror.CodeConflict, "Email already registered")
}

func TestAccountCreateAlreadyInProgress(t *testing.T) {
	f := newFixture(t)
	f.idemp.err = idempotency.ErrAlreadyInProgress

	_, err := f.uc.AccountCreate(context.Background(), validCreateInput())
	assertBusinessError(t, err, goerror.CodeConflict, "Registration already in progress")
}

func TestAccountCreateSnapshotWarmFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.cache.setErr = errors.New("redis down")
	f.cache.getErr = goerror.ErrNotFound

	out, err := f.uc.AccountCreate(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccountID == "" {
		t.Fatal("expected a generated account id")
	}
}

func TestAccountCreatePublishFailure(t *testing.T) {
	f := newFixture(t)
	f.messaging.err = errors.New("broker down")

	_, err := f.uc.AccountCreate(context.Background(), validCreateInput())
	var ge *goerror.Error
	if !errors.As(err, &ge) || ge.Code() != goerror.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}
