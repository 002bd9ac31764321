package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/accountly/internal/account/entity"
	"github.com/shandysiswandi/accountly/internal/pkg/goerror"
	"github.com/shandysiswandi/accountly/internal/pkg/idempotency"
)

type AccountCreateInput struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,password"`
	FirstName   string `validate:"required,min=2,max=50"`
	LastName    string `validate:"required,min=2,max=50"`
	PhoneNumber string `validate:"required,phone"`
}

type AccountCreateOutput struct {
	AccountID string
}

func (s *Usecase) AccountCreate(ctx context.Context, in AccountCreateInput) (*AccountCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "AccountCreate")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	var out *AccountCreateOutput
	err := s.idemp.Exec(ctx, "account_create:"+in.Email, func(ctx context.Context) error {
		created, err := s.accountCreate(ctx, in)
		if err != nil {
			return err
		}

		out = created

		return nil
	})

	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted):
		return nil, goerror.NewBusiness("Registration already in progress", goerror.CodeConflict)
	case err != nil:
		return nil, err
	}

	return out, nil
}

func (s *Usecase) accountCreate(ctx context.Context, in AccountCreateInput) (*AccountCreateOutput, error) {
	if err := s.ensureEmailUnused(ctx, in.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	account := entity.Account{
		ID:          s.uuid.Generate(),
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   s.clock.Now(),
		UpdatedAt:   s.clock.Now(),
	}

	if err := s.repoMessaging.PublishAccountCreate(ctx, AccountCreateEvent{
		AccountID:    account.ID,
		Email:        account.Email,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		PhoneNumber:  account.PhoneNumber,
		PasswordHash: string(hashedPassword),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish account create", "account_id", account.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// The snapshot makes the duplicate check effective before the projection
	// catches up. Failure to warm it is not a failure of the request.
	ttl := s.cfg.GetMinute("modules.account.snapshot_ttl_minutes")
	if err := s.repoCache.SetAccountSnapshot(ctx, account, ttl); err != nil {
		slog.WarnContext(ctx, "failed to warm account snapshot", "account_id", account.ID, "error", err)
	}

	return &AccountCreateOutput{AccountID: account.ID}, nil
}

func (s *Usecase) ensureEmailUnused(ctx context.Context, email string) error {
	if _, err := s.repoCache.GetAccountSnapshot(ctx, email); err == nil {
		return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}

	_, err := s.repoDB.GetAccountByEmail(ctx, email)
	if err == nil {
		return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
