package ports

import (
	"context"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

// CarpoolRegistry is the single shared mutable resource of the matcher. The
// candidate search runs without locks and may return stale counts; Join and
// Leave re-validate under per-carpool exclusion before committing.
type CarpoolRegistry interface {
	// FindCandidates returns open, unexpired carpools with free seats.
	// Geo/time compatibility filtering is the caller's concern.
	FindCandidates(ctx context.Context, now time.Time) ([]*domain.Carpool, error)
	GetByID(ctx context.Context, id string) (*domain.Carpool, error)
	// CreateWithBooking inserts the carpool and marks the booking assigned
	// to it in one commit.
	CreateWithBooking(ctx context.Context, c *domain.Carpool, b *domain.Booking) error
	// Join atomically verifies the carpool is open and below capacity,
	// appends the booking and marks it assigned. Lost races surface as
	// domain.ErrCarpoolFull or domain.ErrCarpoolClosed.
	Join(ctx context.Context, carpoolID string, b *domain.Booking) (*domain.Carpool, error)
	// Leave removes an assigned booking, marking it cancelled. A full
	// carpool reverts to open; an emptied one closes.
	Leave(ctx context.Context, carpoolID, bookingID string) error
	CloseExpired(ctx context.Context, now time.Time) ([]*domain.Carpool, error)
}
