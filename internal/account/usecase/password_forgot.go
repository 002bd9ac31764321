package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) error {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	account, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		// A neutral success keeps account existence unguessable.
		slog.WarnContext(ctx, "password forgot for unknown email", "email", in.Email)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOTPRequest(ctx, OTPRequestEvent{
		AccountID:   account.ID,
		Email:       account.Email,
		FirstName:   account.FirstName,
		PhoneNumber: account.PhoneNumber,
		Purpose:     entity.OTPPurposeForgotPassword,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp request", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
