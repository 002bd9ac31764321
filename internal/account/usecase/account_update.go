package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
)

type AccountUpdateInput struct {
	FirstName   string `validate:"required,min=2,max=50"`
	LastName    string `validate:"required,min=2,max=50"`
	PhoneNumber string `validate:"required,phone"`
}

func (s *Usecase) AccountUpdate(ctx context.Context, in AccountUpdateInput) error {
	ctx, span := s.startSpan(ctx, "AccountUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

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

	if err := s.repoMessaging.PublishAccountUpdate(ctx, AccountUpdateEvent{
		AccountID:   account.ID,
		Email:       account.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish account update", "account_id", account.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
