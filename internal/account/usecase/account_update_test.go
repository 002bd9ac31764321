package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

func TestAccountUpdateSuccess(t *testing.T) {
	f := newFixture(t)
	account := testAccount()
	f.seedAccount(account)

	err := f.uc.AccountUpdate(userCtx(account), AccountUpdateInput{
		FirstName:   "Janet",
		LastName:    "Doe",
		PhoneNumber: "+12025550199",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.messaging.updates) != 1 {
		t.Fatalf("expected 1 update event, got %d", len(f.messaging.updates))
	}
	evt := f.messaging.updates[0]
	if evt.AccountID != account.ID || evt.FirstName != "Janet" || evt.PhoneNumber != "+12025550199" {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestAccountUpdateUnauthenticated(t *testing.T) {
	f := newFixture(t)

	err := f.uc.AccountUpdate(context.Background(), AccountUpdateInput{
		FirstName:   "Janet",
		LastName:    "Doe",
		PhoneNumber: "+12025550199",
	})
	assertBusinessError(t, err, goerror.CodeUnauthorized, "Authentication required")
}

func TestAccountUpdateAccountGone(t *testing.T) {
	f := newFixture(t)

	err := f.uc.AccountUpdate(userCtx(testAccount()), AccountUpdateInput{
		FirstName:   "Janet",
		LastName:    "Doe",
		PhoneNumber: "+12025550199",
	})
	assertBusinessError(t, err, goerror.CodeNotFound, "Account not found")
}
