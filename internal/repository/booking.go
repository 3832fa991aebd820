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

const bookingColumns = `id, account_id, carpool_id, state,
		pickup_lat, pickup_lon, dest_lat, dest_lon, created_at, expires_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, account_id, state, pickup_lat, pickup_lon, dest_lat, dest_lon, created_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.AccountID, b.State,
		b.Pickup.Lat, b.Pickup.Lon, b.Destination.Lat, b.Destination.Lon,
		b.CreatedAt, b.ExpiresAt,
	)
	if err != nil {
		var pgErr *pq.Error
		// Частичный уникальный индекс: одна активная бронь на аккаунт.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrActiveBookingExists
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE account_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by account: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByCarpool(ctx context.Context, carpoolID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE carpool_id = $1 AND state = $2
			  ORDER BY assigned_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, carpoolID, domain.BookingStateAssigned)
	if err != nil {
		return nil, fmt.Errorf("list bookings by carpool: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) HasActive(ctx context.Context, accountID string) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE account_id = $1 AND state = ANY($2)
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, accountID, pq.Array(domain.ActiveBookingStates))
	if err != nil {
		return false, fmt.Errorf("has active booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan has active: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) CancelPending(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET state = $2
			  WHERE id = $1 AND state = $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStateCancelled, domain.BookingStatePending,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ExpirePending(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET state = $2
			  WHERE state = $1 AND expires_at <= $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatePending, domain.BookingStateExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire pending: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		carpoolID sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.AccountID, &carpoolID, &b.State,
		&b.Pickup.Lat, &b.Pickup.Lon, &b.Destination.Lat, &b.Destination.Lon,
		&b.CreatedAt, &b.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	if carpoolID.Valid {
		b.CarpoolID = &carpoolID.String
	}

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
