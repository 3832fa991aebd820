package registry

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type CarpoolStore struct {
	s *Store
}

func (cs *CarpoolStore) FindCandidates(_ context.Context, now time.Time) ([]*domain.Carpool, error) {
	entries := cs.s.snapshotCarpools()

	var res []*domain.Carpool
	for _, e := range entries {
		e.mu.Lock()
		if e.c.HasRoom() && !e.c.Expired(now) {
			res = append(res, cloneCarpool(&e.c))
		}
		e.mu.Unlock()
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

func (cs *CarpoolStore) GetByID(_ context.Context, id string) (*domain.Carpool, error) {
	cs.s.mu.RLock()
	e, ok := cs.s.carpools[id]
	cs.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCarpoolNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneCarpool(&e.c), nil
}

func (cs *CarpoolStore) CreateWithBooking(_ context.Context, c *domain.Carpool, b *domain.Booking) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	stored, ok := cs.s.bookings[b.ID]
	if !ok || stored.State != domain.BookingStatePending {
		return domain.ErrBookingNotFound
	}

	cp := cloneCarpool(c)
	cp.Members = []string{b.ID}
	cp.MemberCount = 1
	cs.s.carpools[c.ID] = &carpoolEntry{c: *cp}

	stored.State = domain.BookingStateAssigned
	stored.CarpoolID = &c.ID
	return nil
}

func (cs *CarpoolStore) Join(_ context.Context, carpoolID string, b *domain.Booking) (*domain.Carpool, error) {
	cs.s.mu.RLock()
	e, ok := cs.s.carpools[carpoolID]
	cs.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCarpoolNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Повторная проверка вместимости уже под локом карпула.
	switch {
	case e.c.State == domain.CarpoolStateClosed:
		return nil, domain.ErrCarpoolClosed
	case e.c.State == domain.CarpoolStateFull || e.c.MemberCount >= e.c.Capacity:
		return nil, domain.ErrCarpoolFull
	}

	cs.s.mu.Lock()
	stored, ok := cs.s.bookings[b.ID]
	if !ok || stored.State != domain.BookingStatePending {
		cs.s.mu.Unlock()
		return nil, domain.ErrBookingNotFound
	}
	stored.State = domain.BookingStateAssigned
	stored.CarpoolID = &e.c.ID
	cs.s.mu.Unlock()

	prev := float64(e.c.MemberCount)
	e.c.MemberCount++
	e.c.PickupAnchor.Lat = (e.c.PickupAnchor.Lat*prev + b.Pickup.Lat) / float64(e.c.MemberCount)
	e.c.PickupAnchor.Lon = (e.c.PickupAnchor.Lon*prev + b.Pickup.Lon) / float64(e.c.MemberCount)
	e.c.DestAnchor.Lat = (e.c.DestAnchor.Lat*prev + b.Destination.Lat) / float64(e.c.MemberCount)
	e.c.DestAnchor.Lon = (e.c.DestAnchor.Lon*prev + b.Destination.Lon) / float64(e.c.MemberCount)
	e.c.Members = append(e.c.Members, b.ID)

	if b.ExpiresAt.After(e.c.ExpiresAt) {
		e.c.ExpiresAt = b.ExpiresAt
	}
	if e.c.MemberCount == e.c.Capacity {
		e.c.State = domain.CarpoolStateFull
	}

	return cloneCarpool(&e.c), nil
}

func (cs *CarpoolStore) Leave(_ context.Context, carpoolID, bookingID string) error {
	cs.s.mu.RLock()
	e, ok := cs.s.carpools[carpoolID]
	cs.s.mu.RUnlock()
	if !ok {
		return domain.ErrCarpoolNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, id := range e.c.Members {
		if id == bookingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrBookingNotFound
	}

	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	stored, ok := cs.s.bookings[bookingID]
	if !ok || stored.State != domain.BookingStateAssigned {
		return domain.ErrBookingNotFound
	}
	stored.State = domain.BookingStateCancelled
	stored.CarpoolID = nil

	e.c.Members = append(e.c.Members[:idx], e.c.Members[idx+1:]...)
	e.c.MemberCount = len(e.c.Members)

	if e.c.MemberCount == 0 {
		// Пустой карпул больше нечем заякорить — закрываем.
		e.c.State = domain.CarpoolStateClosed
		return nil
	}

	if e.c.State == domain.CarpoolStateFull {
		e.c.State = domain.CarpoolStateOpen
	}

	var pLat, pLon, dLat, dLon float64
	for _, id := range e.c.Members {
		m := cs.s.bookings[id]
		pLat += m.Pickup.Lat
		pLon += m.Pickup.Lon
		dLat += m.Destination.Lat
		dLon += m.Destination.Lon
	}
	n := float64(e.c.MemberCount)
	e.c.PickupAnchor = domain.Coordinate{Lat: pLat / n, Lon: pLon / n}
	e.c.DestAnchor = domain.Coordinate{Lat: dLat / n, Lon: dLon / n}

	return nil
}

func (cs *CarpoolStore) CloseExpired(_ context.Context, now time.Time) ([]*domain.Carpool, error) {
	entries := cs.s.snapshotCarpools()

	var res []*domain.Carpool
	for _, e := range entries {
		e.mu.Lock()
		if e.c.State != domain.CarpoolStateClosed && e.c.Expired(now) {
			e.c.State = domain.CarpoolStateClosed
			res = append(res, cloneCarpool(&e.c))
		}
		e.mu.Unlock()
	}
	return res, nil
}
