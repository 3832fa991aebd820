package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (token, account_id, created_at, expires_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.Token, s.AccountID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Validate(ctx context.Context, token string, now time.Time) (string, error) {
	query := `SELECT account_id, expires_at
			  FROM sessions
			  WHERE token=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	var (
		accountID string
		expiresAt time.Time
	)
	if err = row.Scan(&accountID, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("scan session: %w", err)
	}

	if !expiresAt.After(now) {
		return "", domain.ErrSessionExpired
	}

	return accountID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token=$1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query := `DELETE FROM sessions WHERE expires_at <= $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sessions rows affected: %w", err)
	}

	return int(rows), nil
}
