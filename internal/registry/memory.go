// Package registry is the in-process storage backend. It mirrors the
// postgres repositories' semantics: the candidate search is lock-free and
// may observe stale counts, while Join/Leave hold a per-carpool mutex for
// the read-check-write sequence, so capacity can never be oversubscribed.
package registry

import (
	"sync"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type carpoolEntry struct {
	// mu is the carpool's exclusive critical section. Lock order:
	// entry mutex first, then the store mutex.
	mu sync.Mutex
	c  domain.Carpool
}

type Store struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	carpools map[string]*carpoolEntry
	accounts map[string]*domain.Account
	sessions map[string]*domain.Session
}

func NewStore() *Store {
	return &Store{
		bookings: make(map[string]*domain.Booking),
		carpools: make(map[string]*carpoolEntry),
		accounts: make(map[string]*domain.Account),
		sessions: make(map[string]*domain.Session),
	}
}

// Typed views so one store can satisfy every repository port.

func (s *Store) Bookings() *BookingStore { return &BookingStore{s: s} }
func (s *Store) Carpools() *CarpoolStore { return &CarpoolStore{s: s} }
func (s *Store) Accounts() *AccountStore { return &AccountStore{s: s} }
func (s *Store) Sessions() *SessionStore { return &SessionStore{s: s} }

func (s *Store) snapshotCarpools() []*carpoolEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*carpoolEntry, 0, len(s.carpools))
	for _, e := range s.carpools {
		entries = append(entries, e)
	}
	return entries
}

func cloneCarpool(c *domain.Carpool) *domain.Carpool {
	cp := *c
	cp.Members = append([]string(nil), c.Members...)
	return &cp
}
