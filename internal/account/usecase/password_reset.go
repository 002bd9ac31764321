package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type PasswordResetInput struct {
	CurrentPassword string `validate:"required,password"`
}

func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	account, err := s.repoDB.GetAccountByID(ctx, clm.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", clm.ID, "error", err)
		return goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(account.Password, in.CurrentPassword) {
		return goerror.NewBusiness("Current password is incorrect", goerror.CodeUnauthorized)
	}

	if err := s.repoMessaging.PublishOTPRequest(ctx, OTPRequestEvent{
		AccountID:   account.ID,
		Email:       account.Email,
		FirstName:   account.FirstName,
		PhoneNumber: account.PhoneNumber,
		Purpose:     entity.OTPPurposeResetPassword,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp request", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
