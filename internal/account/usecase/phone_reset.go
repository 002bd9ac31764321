package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type PhoneResetInput struct {
	PhoneNumber string `validate:"required,phone"`
}

// PhoneReset starts a phone number change. The downstream consumer sends a
// verification code to the new number; PhoneUpdate finishes the change.
func (s *Usecase) PhoneReset(ctx context.Context, in PhoneResetInput) error {
	ctx, span := s.startSpan(ctx, "PhoneReset")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoMessaging.PublishPhoneReset(ctx, PhoneResetEvent{
		AccountID:   clm.ID,
		Email:       clm.Email,
		PhoneNumber: in.PhoneNumber,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish phone reset", "account_id", clm.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
