package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type AccountDisableInput struct {
	AccountID string `validate:"required,uuid"`
}

func (s *Usecase) AccountDisable(ctx context.Context, in AccountDisableInput) error {
	ctx, span := s.startSpan(ctx, "AccountDisable")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	// Owners may disable their own account; anyone else needs the policy.
	if clm.ID != in.AccountID {
		if _, err := s.authenticatedAndAuthorized(ctx, "accounts", "disable"); err != nil {
			return err
		}
	}

	account, err := s.repoDB.GetAccountByID(ctx, in.AccountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", in.AccountID, "error", err)
		return goerror.NewServer(err)
	}

	if account.Disabled {
		return goerror.NewBusiness("Account already disabled", goerror.CodeConflict)
	}

	if err := s.repoMessaging.PublishAccountStatus(ctx, AccountStatusEvent{
		AccountID: account.ID,
		Email:     account.Email,
		Disabled:  true,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish account status", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
