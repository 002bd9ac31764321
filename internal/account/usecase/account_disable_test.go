package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

func TestAccountDisableByOwner(t *testing.T) {
	f := newFixture(t)
	account := testAccount()
	f.seedAccount(account)

	err := f.uc.AccountDisable(userCtx(account), AccountDisableInput{AccountID: account.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.messaging.statuses) != 1 || !f.messaging.statuses[0].Disabled {
		t.Fatalf("expected a disable status event, got %v", f.messaging.statuses)
	}
}

func TestAccountDisableByAdmin(t *testing.T) {
	f := newFixture(t)
	account := testAccount()
	f.seedAccount(account)

	err := f.uc.AccountDisable(adminCtx(), AccountDisableInput{AccountID: account.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccountDisableOtherAccountForbidden(t *testing.T) {
	f := newFixture(t)
	account := testAccount()
	f.seedAccount(account)

	other := testAccount()
	other.ID = "0199c2a0-0000-7000-8000-0000000000bb"

	err := f.uc.AccountDisable(userCtx(other), AccountDisableInput{AccountID: account.ID})
	assertBusinessError(t, err, goerror.CodeForbidden, "Account not allowed")
}

func TestAccountDisableUnauthenticated(t *testing.T) {
	f := newFixture(t)

	err := f.uc.AccountDisable(context.Background(), AccountDisableInput{AccountID: testAccount().ID})
	assertBusinessError(t, err, goerror.CodeUnauthorized, "Authentication required")
}

func TestAccountDisableAlreadyDisabled(t *testing.T) {
	f := newFixture(t)
	account := testAccount()
	account.Disabled = true
	f.seedAccount(account)

	err := f.uc.AccountDisable(userCtx(account), AccountDisableInput{AccountID: account.ID})
	assertBusinessError(t, err, goerror.CodeConflict, "Account already disabled")
}

func TestAccountDisableNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.uc.AccountDisable(adminCtx(), AccountDisableInput{
		AccountID: "0199c2a0-0000-7000-8000-0000000000cc",
	})
	assertBusinessError(t, err, goerror.CodeNotFound, "Account not found")
}
