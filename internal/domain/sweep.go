package domain

// SweepReport summarizes one pass of the lifecycle sweeper.
type SweepReport struct {
	ClosedCarpools  int `json:"closed_carpools"`
	ExpiredBookings int `json:"expired_bookings"`
}
