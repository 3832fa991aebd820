package registry

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type BookingStore struct {
	s *Store
}

func (bs *BookingStore) Create(_ context.Context, b *domain.Booking) error {
	bs.s.mu.Lock()
	defer bs.s.mu.Unlock()

	for _, other := range bs.s.bookings {
		if other.AccountID == b.AccountID && other.Active() {
			return domain.ErrActiveBookingExists
		}
	}

	cp := *b
	bs.s.bookings[b.ID] = &cp
	return nil
}

func (bs *BookingStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	bs.s.mu.RLock()
	defer bs.s.mu.RUnlock()

	b, ok := bs.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	cp := *b
	return &cp, nil
}

func (bs *BookingStore) ListByAccount(_ context.Context, accountID string) ([]*domain.Booking, error) {
	bs.s.mu.RLock()
	defer bs.s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range bs.s.bookings {
		if b.AccountID == accountID {
			cp := *b
			res = append(res, &cp)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (bs *BookingStore) ListByCarpool(_ context.Context, carpoolID string) ([]*domain.Booking, error) {
	bs.s.mu.RLock()
	e, ok := bs.s.carpools[carpoolID]
	bs.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCarpoolNotFound
	}

	e.mu.Lock()
	members := append([]string(nil), e.c.Members...)
	e.mu.Unlock()

	bs.s.mu.RLock()
	defer bs.s.mu.RUnlock()

	res := make([]*domain.Booking, 0, len(members))
	for _, id := range members {
		if b, ok := bs.s.bookings[id]; ok {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (bs *BookingStore) HasActive(_ context.Context, accountID string) (bool, error) {
	bs.s.mu.RLock()
	defer bs.s.mu.RUnlock()

	for _, b := range bs.s.bookings {
		if b.AccountID == accountID && b.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (bs *BookingStore) CancelPending(_ context.Context, id string) error {
	bs.s.mu.Lock()
	defer bs.s.mu.Unlock()

	b, ok := bs.s.bookings[id]
	if !ok || b.State != domain.BookingStatePending {
		return domain.ErrBookingNotFound
	}

	b.State = domain.BookingStateCancelled
	return nil
}

func (bs *BookingStore) ExpirePending(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	bs.s.mu.Lock()
	defer bs.s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range bs.s.bookings {
		if b.State == domain.BookingStatePending && !b.ExpiresAt.After(now) {
			b.State = domain.BookingStateExpired
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}
