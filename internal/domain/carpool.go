package domain

import "time"

type CarpoolState string

const (
	CarpoolStateOpen   CarpoolState = "open"
	CarpoolStateFull   CarpoolState = "full"
	CarpoolStateClosed CarpoolState = "closed"
)

type Carpool struct {
	ID          string       `json:"id"`
	State       CarpoolState `json:"state"`
	Capacity    int          `json:"capacity"`
	MemberCount int          `json:"member_count"`
	// Members holds booking ids in join order; populated on detail reads.
	Members      []string   `json:"members,omitempty"`
	PickupAnchor Coordinate `json:"pickup_anchor"`
	DestAnchor   Coordinate `json:"dest_anchor"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
}

func (c *Carpool) HasRoom() bool {
	return c.State == CarpoolStateOpen && c.MemberCount < c.Capacity
}

func (c *Carpool) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
