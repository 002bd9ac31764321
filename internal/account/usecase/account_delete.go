package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type AccountDeleteInput struct {
	AccountID string `validate:"required,uuid"`
}

func (s *Usecase) AccountDelete(ctx context.Context, in AccountDeleteInput) error {
	ctx, span := s.startSpan(ctx, "AccountDelete")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "accounts", "delete"); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	account, err := s.repoDB.GetAccountByID(ctx, in.AccountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", in.AccountID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishAccountDelete(ctx, AccountDeleteEvent{
		AccountID: account.ID,
		Email:     account.Email,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish account delete", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
