package inbound

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/accountly/internal/account/usecase"
	"github.com/shandysiswandi/accountly/internal/pkg/router"
)

type fakeUC struct {
	createIn  usecase.AccountCreateInput
	createOut *usecase.AccountCreateOutput
	err       error

	emailVerifyIn usecase.EmailVerifyInput
	deleteIn      usecase.AccountDeleteInput
}

func (f *fakeUC) AccountCreate(_ context.Context, in usecase.AccountCreateInput) (*usecase.AccountCreateOutput, error) {
	f.createIn = in
	return f.createOut, f.err
}

func (f *fakeUC) AccountUpdate(context.Context, usecase.AccountUpdateInput) error { return f.err }

func (f *fakeUC) AccountDelete(_ context.Context, in usecase.AccountDeleteInput) error {
	f.deleteIn = in
	return f.err
}

func (f *fakeUC) AccountDisable(context.Context, usecase.AccountDisableInput) error { return f.err }
func (f *fakeUC) AccountEnable(context.Context, usecase.AccountEnableInput) error   { return f.err }

func (f *fakeUC) PasswordForgot(context.Context, usecase.PasswordForgotInput) error { return f.err }
func (f *fakeUC) PasswordReset(context.Context, usecase.PasswordResetInput) error   { return f.err }
func (f *fakeUC) PasswordUpdate(context.Context, usecase.PasswordUpdateInput) error { return f.err }

func (f *fakeUC) EmailVerify(_ context.Context, in usecase.EmailVerifyInput) error {
	f.emailVerifyIn = in
	return f.err
}

func (f *fakeUC) PhoneVerify(context.Context, usecase.PhoneVerifyInput) error { return f.err }
func (f *fakeUC) PhoneReset(context.Context, usecase.PhoneResetInput) error   { return f.err }
func (f *fakeUC) PhoneUpdate(context.Context, usecase.PhoneUpdateInput) error { return f.err }

func newRequest(t *testing.T, body string) *router.Request {
	t.Helper()

	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	return &router.Request{Request: req}
}

func TestAccountCreateEndpoint(t *testing.T) {
	uc := &fakeUC{createOut: &usecase.AccountCreateOutput{AccountID: "acc-1"}}
	end := &HTTPEndpoint{uc: uc}

	body := `{"email":"jane.doe@example.com","password":"Secret123456",` +
		`"firstname":"Jane","lastname":"Doe","phone_number":"+12025550123"}`

	out, err := end.AccountCreate(newRequest(t, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, ok := out.(AccountCreateResponse)
	if !ok {
		t.Fatalf("unexpected response type %T", out)
	}
	if resp.AccountID != "acc-1" {
		t.Fatalf("unexpected account id %q", resp.AccountID)
	}
	if uc.createIn.Email != "jane.doe@example.com" || uc.createIn.PhoneNumber != "+12025550123" {
		t.Fatalf("input not forwarded, got %+v", uc.createIn)
	}
}

func TestAccountCreateEndpointRejectsUnknownFields(t *testing.T) {
	end := &HTTPEndpoint{uc: &fakeUC{}}

	if _, err := end.AccountCreate(newRequest(t, `{"email":"a@b.c","nope":true}`)); err == nil {
		t.Fatal("expected decode error for unknown field")
	}
}

func TestEmailVerifyEndpoint(t *testing.T) {
	uc := &fakeUC{}
	end := &HTTPEndpoint{uc: uc}

	out, err := end.EmailVerify(newRequest(t, `{"email":"jane.doe@example.com","otp":"123456"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(EmailVerifyResponse); !ok {
		t.Fatalf("unexpected response type %T", out)
	}
	if uc.emailVerifyIn.OTP != "123456" {
		t.Fatalf("otp not forwarded, got %+v", uc.emailVerifyIn)
	}
}
