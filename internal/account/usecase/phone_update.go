package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/account/otp"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type PhoneUpdateInput struct {
	PhoneNumber string `validate:"required,phone"`
	OTP         string `validate:"required,numeric,len=6"`
}

// PhoneUpdate finishes a phone number change started by PhoneReset. The code
// was delivered to the new number, and the cached record pins that number;
// a code issued for a different number never moves this one.
func (s *Usecase) PhoneUpdate(ctx context.Context, in PhoneUpdateInput) error {
	ctx, span := s.startSpan(ctx, "PhoneUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	record, key, err := s.otp.Lookup(ctx, clm.Email, in.OTP, entity.OTPPurposePhoneVerification)
	if errors.Is(err, otp.ErrInvalid) {
		return errInvalidOTP
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to lookup otp", "account_id", clm.ID, "error", err)
		return goerror.NewServer(err)
	}

	if record.PhoneNumber != in.PhoneNumber {
		return errInvalidOTP
	}

	s.invalidateOTP(ctx, key)

	if err := s.repoMessaging.PublishPhoneUpdate(ctx, PhoneUpdateEvent{
		AccountID:   clm.ID,
		PhoneNumber: in.PhoneNumber,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish phone update", "account_id", clm.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
