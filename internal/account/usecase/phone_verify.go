package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/account/otp"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type PhoneVerifyInput struct {
	PhoneNumber string `validate:"required,phone"`
	OTP         string `validate:"required,numeric,len=6"`
}

func (s *Usecase) PhoneVerify(ctx context.Context, in PhoneVerifyInput) error {
	ctx, span := s.startSpan(ctx, "PhoneVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	account, err := s.repoDB.GetAccountByPhone(ctx, in.PhoneNumber)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by phone", "phone_number", in.PhoneNumber, "error", err)
		return goerror.NewServer(err)
	}

	_, key, err := s.otp.Lookup(ctx, in.PhoneNumber, in.OTP, entity.OTPPurposePhoneVerification)
	if errors.Is(err, otp.ErrInvalid) {
		return errInvalidOTP
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to lookup otp", "phone_number", in.PhoneNumber, "error", err)
		return goerror.NewServer(err)
	}

	s.invalidateOTP(ctx, key)

	if err := s.repoMessaging.PublishPhoneVerified(ctx, PhoneVerifiedEvent{
		AccountID:   account.ID,
		PhoneNumber: account.PhoneNumber,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish phone verified", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
