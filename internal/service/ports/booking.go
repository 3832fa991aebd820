package ports

import (
	"context"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error)
	ListByCarpool(ctx context.Context, carpoolID string) ([]*domain.Booking, error)
	HasActive(ctx context.Context, accountID string) (bool, error)
	// CancelPending flips a pending booking to cancelled; returns
	// domain.ErrBookingNotFound when the booking is no longer pending.
	CancelPending(ctx context.Context, id string) error
	ExpirePending(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
