package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type PasswordUpdateInput struct {
	NewPassword string `validate:"required,password"`
}

// PasswordUpdate changes the password for the account named by the one-shot
// token the middleware already verified against the token authority.
func (s *Usecase) PasswordUpdate(ctx context.Context, in PasswordUpdateInput) error {
	ctx, span := s.startSpan(ctx, "PasswordUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishPasswordUpdate(ctx, PasswordUpdateEvent{
		AccountID:    clm.ID,
		Email:        clm.Email,
		PasswordHash: string(hashedPassword),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish password update", "account_id", clm.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
