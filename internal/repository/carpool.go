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

const carpoolColumns = `id, state, capacity, member_count,
		pickup_lat, pickup_lon, dest_lat, dest_lon, created_at, expires_at`

// CarpoolRepository implements the registry on postgres. The candidate
// search is lock-free and tolerates stale member counts; Join and Leave
// take a row lock on the carpool and re-check everything under it.
type CarpoolRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarpoolRepo(db *dbpg.DB) *CarpoolRepository {
	return &CarpoolRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CarpoolRepository) FindCandidates(ctx context.Context, now time.Time) ([]*domain.Carpool, error) {
	query := `SELECT ` + carpoolColumns + `
			  FROM carpools
			  WHERE state = $1 AND expires_at > $2 AND member_count < capacity
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.CarpoolStateOpen, now)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	defer rows.Close()

	var res []*domain.Carpool
	for rows.Next() {
		c, err := scanCarpool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan carpool: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CarpoolRepository) GetByID(ctx context.Context, id string) (*domain.Carpool, error) {
	query := `SELECT ` + carpoolColumns + `
			  FROM carpools
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get carpool: %w", err)
	}

	c, err := scanCarpool(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarpoolNotFound
		}
		return nil, fmt.Errorf("scan carpool: %w", err)
	}

	membersQuery := `SELECT id FROM bookings
					 WHERE carpool_id = $1 AND state = $2
					 ORDER BY assigned_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, membersQuery, id, domain.BookingStateAssigned)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID string
		if err = rows.Scan(&bookingID); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		c.Members = append(c.Members, bookingID)
	}

	return c, rows.Err()
}

func (r *CarpoolRepository) CreateWithBooking(ctx context.Context, c *domain.Carpool, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO carpools (id, state, capacity, member_count, pickup_lat, pickup_lon, dest_lat, dest_lon, created_at, expires_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, insert,
		c.ID, c.State, c.Capacity, c.MemberCount,
		c.PickupAnchor.Lat, c.PickupAnchor.Lon, c.DestAnchor.Lat, c.DestAnchor.Lon,
		c.CreatedAt, c.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert carpool: %w", err)
	}

	if err = assignBookingTx(ctx, tx, c.ID, b.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CarpoolRepository) Join(ctx context.Context, carpoolID string, b *domain.Booking) (*domain.Carpool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Захватываем строку карпула и перепроверяем вместимость под локом.
	lockQuery := `SELECT ` + carpoolColumns + `
				  FROM carpools
				  WHERE id = $1
				  FOR UPDATE`
	c, err := scanCarpool(tx.QueryRowContext(ctx, lockQuery, carpoolID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarpoolNotFound
		}
		return nil, fmt.Errorf("lock carpool: %w", err)
	}

	switch {
	case c.State == domain.CarpoolStateClosed:
		return nil, domain.ErrCarpoolClosed
	case c.State == domain.CarpoolStateFull || c.MemberCount >= c.Capacity:
		return nil, domain.ErrCarpoolFull
	}

	prev := float64(c.MemberCount)
	c.MemberCount++
	c.PickupAnchor.Lat = (c.PickupAnchor.Lat*prev + b.Pickup.Lat) / float64(c.MemberCount)
	c.PickupAnchor.Lon = (c.PickupAnchor.Lon*prev + b.Pickup.Lon) / float64(c.MemberCount)
	c.DestAnchor.Lat = (c.DestAnchor.Lat*prev + b.Destination.Lat) / float64(c.MemberCount)
	c.DestAnchor.Lon = (c.DestAnchor.Lon*prev + b.Destination.Lon) / float64(c.MemberCount)

	// Присоединение не сокращает окно группы.
	if b.ExpiresAt.After(c.ExpiresAt) {
		c.ExpiresAt = b.ExpiresAt
	}
	if c.MemberCount == c.Capacity {
		c.State = domain.CarpoolStateFull
	}

	update := `UPDATE carpools
			   SET state=$2, member_count=$3,
			       pickup_lat=$4, pickup_lon=$5, dest_lat=$6, dest_lon=$7,
			       expires_at=$8
			   WHERE id=$1`
	_, err = tx.ExecContext(
		ctx, update,
		c.ID, c.State, c.MemberCount,
		c.PickupAnchor.Lat, c.PickupAnchor.Lon, c.DestAnchor.Lat, c.DestAnchor.Lon,
		c.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update carpool: %w", err)
	}

	if err = assignBookingTx(ctx, tx, c.ID, b.ID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit join: %w", err)
	}

	return c, nil
}

func (r *CarpoolRepository) Leave(ctx context.Context, carpoolID, bookingID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + carpoolColumns + `
				  FROM carpools
				  WHERE id = $1
				  FOR UPDATE`
	c, err := scanCarpool(tx.QueryRowContext(ctx, lockQuery, carpoolID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCarpoolNotFound
		}
		return fmt.Errorf("lock carpool: %w", err)
	}

	release := `UPDATE bookings
				SET state=$3, carpool_id=NULL, assigned_at=NULL
				WHERE id=$1 AND carpool_id=$2 AND state=$4`
	res, err := tx.ExecContext(
		ctx, release,
		bookingID, carpoolID,
		domain.BookingStateCancelled, domain.BookingStateAssigned,
	)
	if err != nil {
		return fmt.Errorf("release booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	c.MemberCount--
	switch {
	case c.MemberCount <= 0:
		// Пустой карпул больше нечем заякорить — закрываем.
		c.MemberCount = 0
		c.State = domain.CarpoolStateClosed
	default:
		if c.State == domain.CarpoolStateFull {
			c.State = domain.CarpoolStateOpen
		}
		if err = recomputeAnchorsTx(ctx, tx, c); err != nil {
			return err
		}
	}

	update := `UPDATE carpools
			   SET state=$2, member_count=$3,
			       pickup_lat=$4, pickup_lon=$5, dest_lat=$6, dest_lon=$7
			   WHERE id=$1`
	_, err = tx.ExecContext(
		ctx, update,
		c.ID, c.State, c.MemberCount,
		c.PickupAnchor.Lat, c.PickupAnchor.Lon, c.DestAnchor.Lat, c.DestAnchor.Lon,
	)
	if err != nil {
		return fmt.Errorf("update carpool: %w", err)
	}

	return tx.Commit()
}

func (r *CarpoolRepository) CloseExpired(ctx context.Context, now time.Time) ([]*domain.Carpool, error) {
	query := `UPDATE carpools
			  SET state = $1
			  WHERE expires_at <= $2 AND state = ANY($3)
			  RETURNING ` + carpoolColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.CarpoolStateClosed, now,
		pq.Array([]domain.CarpoolState{domain.CarpoolStateOpen, domain.CarpoolStateFull}),
	)
	if err != nil {
		return nil, fmt.Errorf("close expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Carpool
	for rows.Next() {
		c, err := scanCarpool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan carpool: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// assignBookingTx flips a pending booking to assigned inside the caller's
// transaction so carpool membership and booking state commit together.
func assignBookingTx(ctx context.Context, tx *sql.Tx, carpoolID, bookingID string) error {
	query := `UPDATE bookings
			  SET state=$3, carpool_id=$2, assigned_at=now()
			  WHERE id=$1 AND state=$4`
	res, err := tx.ExecContext(
		ctx, query,
		bookingID, carpoolID,
		domain.BookingStateAssigned, domain.BookingStatePending,
	)
	if err != nil {
		return fmt.Errorf("assign booking: %w", err)
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

func recomputeAnchorsTx(ctx context.Context, tx *sql.Tx, c *domain.Carpool) error {
	query := `SELECT AVG(pickup_lat), AVG(pickup_lon), AVG(dest_lat), AVG(dest_lon)
			  FROM bookings
			  WHERE carpool_id = $1 AND state = $2`

	var pLat, pLon, dLat, dLon sql.NullFloat64
	err := tx.QueryRowContext(ctx, query, c.ID, domain.BookingStateAssigned).
		Scan(&pLat, &pLon, &dLat, &dLon)
	if err != nil {
		return fmt.Errorf("recompute anchors: %w", err)
	}

	if pLat.Valid {
		c.PickupAnchor = domain.Coordinate{Lat: pLat.Float64, Lon: pLon.Float64}
		c.DestAnchor = domain.Coordinate{Lat: dLat.Float64, Lon: dLon.Float64}
	}

	return nil
}

func scanCarpool(row rowScanner) (*domain.Carpool, error) {
	var c domain.Carpool
	err := row.Scan(
		&c.ID, &c.State, &c.Capacity, &c.MemberCount,
		&c.PickupAnchor.Lat, &c.PickupAnchor.Lon, &c.DestAnchor.Lat, &c.DestAnchor.Lon,
		&c.CreatedAt, &c.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
