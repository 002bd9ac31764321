package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/account/otp"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type EmailVerifyInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,numeric,len=6"`
}

func (s *Usecase) EmailVerify(ctx context.Context, in EmailVerifyInput) error {
	ctx, span := s.startSpan(ctx, "EmailVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	account, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	_, key, err := s.otp.Lookup(ctx, in.Email, in.OTP, entity.OTPPurposeEmailVerification)
	if errors.Is(err, otp.ErrInvalid) {
		return errInvalidOTP
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to lookup otp", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	s.invalidateOTP(ctx, key)

	if err := s.repoMessaging.PublishEmailVerified(ctx, EmailVerifiedEvent{
		AccountID: account.ID,
		Email:     account.Email,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish email verified", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
