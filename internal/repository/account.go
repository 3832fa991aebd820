package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, username, first_name, last_name, email, password_hash, salary, account_level, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Username, a.FirstName, a.LastName,
		a.Email, a.PasswordHash, a.Salary, a.AccountLevel, a.TelegramChatID, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.Constraint == "accounts_email_key" {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, username, first_name, last_name, email, password_hash, salary, account_level, telegram_chat_id, created_at
			  FROM accounts
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, username, first_name, last_name, email, password_hash, salary, account_level, telegram_chat_id, created_at
			  FROM accounts
			  WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return scanAccount(row)
}

func (r *AccountRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE id=$1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("account exists: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) UpdateSalary(ctx context.Context, id string, salary int64) error {
	query := `UPDATE accounts SET salary=$2 WHERE id=$1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, salary)
	if err != nil {
		return fmt.Errorf("update salary: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("salary rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Username, &a.FirstName, &a.LastName,
		&a.Email, &a.PasswordHash, &a.Salary, &a.AccountLevel, &a.TelegramChatID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return &a, nil
}
