package inbound

import (
	"context"

	"github.com/shandysiswandi/accountly/internal/account/usecase"
	"github.com/shandysiswandi/accountly/internal/pkg/router"
)

type uc interface {
	AccountCreate(ctx context.Context, in usecase.AccountCreateInput) (*usecase.AccountCreateOutput, error)
	AccountUpdate(ctx context.Context, in usecase.AccountUpdateInput) error
	AccountDelete(ctx context.Context, in usecase.AccountDeleteInput) error
	AccountDisable(ctx context.Context, in usecase.AccountDisableInput) error
	AccountEnable(ctx context.Context, in usecase.AccountEnableInput) error

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	PasswordUpdate(ctx context.Context, in usecase.PasswordUpdateInput) error

	EmailVerify(ctx context.Context, in usecase.EmailVerifyInput) error

	PhoneVerify(ctx context.Context, in usecase.PhoneVerifyInput) error
	PhoneReset(ctx context.Context, in usecase.PhoneResetInput) error
	PhoneUpdate(ctx context.Context, in usecase.PhoneUpdateInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Account lifecycle
	r.POST("/api/v1/accounts", end.AccountCreate)
	r.PUT("/api/v1/accounts", end.AccountUpdate)              // need authenticated
	r.DELETE("/api/v1/accounts/:id", end.AccountDelete)       // need authenticated & authorization
	r.POST("/api/v1/accounts/:id/disable", end.AccountDisable) // need authenticated
	r.POST("/api/v1/accounts/:id/enable", end.AccountEnable)   // need authenticated & authorization

	// Password Management
	r.POST("/api/v1/accounts/password/forgot", end.PasswordForgot)
	r.POST("/api/v1/accounts/password/reset", end.PasswordReset) // need authenticated
	r.PUT("/api/v1/accounts/password", end.PasswordUpdate)       // need authenticated (one-shot token)

	// Verification
	r.POST("/api/v1/accounts/email/verify", end.EmailVerify)
	r.POST("/api/v1/accounts/phone/verify", end.PhoneVerify)
	r.POST("/api/v1/accounts/phone/reset", end.PhoneReset) // need authenticated
	r.PUT("/api/v1/accounts/phone", end.PhoneUpdate)       // need authenticated
}
