package domain

import "time"

type BookingState string

const (
	BookingStatePending   BookingState = "pending"
	BookingStateAssigned  BookingState = "assigned"
	BookingStateExpired   BookingState = "expired"
	BookingStateCancelled BookingState = "cancelled"
)

var ActiveBookingStates = []BookingState{BookingStatePending, BookingStateAssigned}

type Booking struct {
	ID          string       `json:"id"`
	AccountID   string       `json:"account_id"`
	Pickup      Coordinate   `json:"pickup"`
	Destination Coordinate   `json:"destination"`
	CarpoolID   *string      `json:"carpool_id,omitempty"`
	State       BookingState `json:"state"`
	CreatedAt   time.Time    `json:"created_at"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// Active covers states that still hold (or may claim) a carpool seat.
func (b *Booking) Active() bool {
	return b.State == BookingStatePending || b.State == BookingStateAssigned
}

type SubmitBookingInput struct {
	AccountID   string
	Pickup      Coordinate
	Destination Coordinate
	ExpiresAt   time.Time
}
