package db

import (
	"context"

	"github.com/shandysiswandi/accountly/internal/account/entity"
)

const accountColumns = `id, email, firstname, lastname, phone_number, password,
	disabled, admin, created_at, updated_at`

func (s *DB) scanAccount(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var acc entity.Account
	err := s.conn.QueryRow(ctx, query, arg).Scan(
		&acc.ID,
		&acc.Email,
		&acc.FirstName,
		&acc.LastName,
		&acc.PhoneNumber,
		&acc.Password,
		&acc.Disabled,
		&acc.Admin,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &acc, nil
}

func (s *DB) GetAccountByID(ctx context.Context, id string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	return s.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	return s.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1 AND deleted_at IS NULL`, email)
}

func (s *DB) GetAccountByPhone(ctx context.Context, phoneNumber string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByPhone")
	defer func() { s.endSpan(span, err) }()

	return s.scanAccount(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE phone_number = $1 AND deleted_at IS NULL`, phoneNumber)
}
