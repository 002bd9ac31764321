package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type AccountEnableInput struct {
	AccountID string `validate:"required,uuid"`
}

func (s *Usecase) AccountEnable(ctx context.Context, in AccountEnableInput) error {
	ctx, span := s.startSpan(ctx, "AccountEnable")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "accounts", "enable"); err != nil {
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

	if !account.Disabled {
		return goerror.NewBusiness("Account already enabled", goerror.CodeConflict)
	}

	if err := s.repoMessaging.PublishAccountStatus(ctx, AccountStatusEvent{
		AccountID: account.ID,
		Email:     account.Email,
		Disabled:  false,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish account status", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
