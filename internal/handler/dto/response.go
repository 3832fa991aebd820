package dto

import (
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type AccountResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Salary    int64  `json:"salary"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
	// ExpiresAt is the session expiry in RFC3339.
	ExpiresAt string `json:"expires_at"`
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BookingResponse struct {
	ID          string             `json:"id"`
	AccountID   string             `json:"account_id"`
	Pickup      CoordinateResponse `json:"pickup"`
	Destination CoordinateResponse `json:"destination"`
	State       string             `json:"state"`
	CarpoolID   *string            `json:"carpool_id,omitempty"`
	CreatedAt   string             `json:"created_at"`
	ExpiresAt   string             `json:"expires_at"`
}

type BookingStatusResponse struct {
	State     string  `json:"state"`
	CarpoolID *string `json:"carpool_id,omitempty"`
}

type CarpoolResponse struct {
	ID          string             `json:"id"`
	State       string             `json:"state"`
	Capacity    int                `json:"capacity"`
	MemberCount int                `json:"member_count"`
	Members     []string           `json:"members,omitempty"`
	Pickup      CoordinateResponse `json:"pickup"`
	Destination CoordinateResponse `json:"destination"`
	CreatedAt   string             `json:"created_at"`
	ExpiresAt   string             `json:"expires_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Salary:    a.Salary,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuthResponse(a *domain.Account, s *domain.Session) AuthResponse {
	return AuthResponse{
		Account:   ToAccountResponse(a),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		AccountID:   b.AccountID,
		Pickup:      CoordinateResponse{Lat: b.Pickup.Lat, Lon: b.Pickup.Lon},
		Destination: CoordinateResponse{Lat: b.Destination.Lat, Lon: b.Destination.Lon},
		State:       string(b.State),
		CarpoolID:   b.CarpoolID,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   b.ExpiresAt.Format(time.RFC3339),
	}
}

func ToBookingStatusResponse(b *domain.Booking) BookingStatusResponse {
	return BookingStatusResponse{
		State:     string(b.State),
		CarpoolID: b.CarpoolID,
	}
}

func ToCarpoolResponse(c *domain.Carpool) CarpoolResponse {
	return CarpoolResponse{
		ID:          c.ID,
		State:       string(c.State),
		Capacity:    c.Capacity,
		MemberCount: c.MemberCount,
		Members:     c.Members,
		Pickup:      CoordinateResponse{Lat: c.PickupAnchor.Lat, Lon: c.PickupAnchor.Lon},
		Destination: CoordinateResponse{Lat: c.DestAnchor.Lat, Lon: c.DestAnchor.Lon},
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   c.ExpiresAt.Format(time.RFC3339),
	}
}
