package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/geo"
	"github.com/stpnv0/RidePooler/internal/service/ports"
)

// MatcherOptions fixes the compatibility thresholds of the engine.
type MatcherOptions struct {
	PickupRadiusKM  float64
	DestRadiusKM    float64
	DefaultCapacity int
	MinOverlap      time.Duration
	BookingTTL      time.Duration
}

// MatcherService assigns incoming bookings to carpools: it searches the
// registry optimistically, commits through the registry's atomic Join and
// falls back to opening a new carpool when nothing compatible has room.
type MatcherService struct {
	bookings ports.BookingRepo
	carpools ports.CarpoolRegistry
	accounts ports.AccountRepo
	notifier ports.RideNotifier
	opts     MatcherOptions
	logger   logger.Logger

	now func() time.Time
}

func NewMatcherService(
	bookings ports.BookingRepo,
	carpools ports.CarpoolRegistry,
	accounts ports.AccountRepo,
	notifier ports.RideNotifier,
	opts MatcherOptions,
	logger logger.Logger,
) *MatcherService {
	return &MatcherService{
		bookings: bookings,
		carpools: carpools,
		accounts: accounts,
		notifier: notifier,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *MatcherService) Submit(ctx context.Context, input domain.SubmitBookingInput) (*domain.Booking, error) {
	now := s.now().UTC()

	if !input.Pickup.Valid() || !input.Destination.Valid() {
		return nil, fmt.Errorf("%w: coordinates out of range", domain.ErrInvalidBooking)
	}

	expiresAt := input.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(s.opts.BookingTTL)
	}
	if !expiresAt.After(now) {
		return nil, fmt.Errorf("%w: expiry must be after creation", domain.ErrInvalidBooking)
	}

	exists, err := s.accounts.Exists(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	// Ранний отказ без записи; гонку окончательно закрывает Create.
	active, err := s.bookings.HasActive(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check active booking: %w", err)
	}
	if active {
		return nil, domain.ErrActiveBookingExists
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		AccountID:   input.AccountID,
		Pickup:      input.Pickup,
		Destination: input.Destination,
		State:       domain.BookingStatePending,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}
	if err = s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	carpool, err := s.match(ctx, booking, now)
	if err != nil {
		return nil, err
	}

	booking.State = domain.BookingStateAssigned
	booking.CarpoolID = &carpool.ID

	s.logger.Info("booking assigned",
		logger.String("booking_id", booking.ID),
		logger.String("account_id", booking.AccountID),
		logger.String("carpool_id", carpool.ID),
		logger.Int("members", carpool.MemberCount),
	)

	go s.notifyAssigned(context.WithoutCancel(ctx), booking, carpool)

	return booking, nil
}

// match runs the optimistic search twice: a Join losing the capacity race
// falls through to the next candidate, an exhausted pass re-searches once.
// When nothing compatible has room, a fresh carpool is opened around the
// booking — that path cannot conflict.
func (s *MatcherService) match(ctx context.Context, b *domain.Booking, now time.Time) (*domain.Carpool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		candidates, err := s.carpools.FindCandidates(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("find candidates: %w", err)
		}

		compatible := s.rankCompatible(b, candidates)
		if len(compatible) == 0 {
			break
		}

		for _, cand := range compatible {
			c, err := s.carpools.Join(ctx, cand.ID, b)
			if errors.Is(err, domain.ErrCarpoolFull) || errors.Is(err, domain.ErrCarpoolClosed) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("join carpool: %w", err)
			}
			return c, nil
		}
	}

	c := &domain.Carpool{
		ID:           uuid.New().String(),
		State:        domain.CarpoolStateOpen,
		Capacity:     s.opts.DefaultCapacity,
		MemberCount:  1,
		Members:      []string{b.ID},
		PickupAnchor: b.Pickup,
		DestAnchor:   b.Destination,
		CreatedAt:    now,
		ExpiresAt:    b.ExpiresAt,
	}
	if err := s.carpools.CreateWithBooking(ctx, c, b); err != nil {
		return nil, fmt.Errorf("create carpool: %w", err)
	}

	s.logger.Info("carpool created",
		logger.String("carpool_id", c.ID),
		logger.Int("capacity", c.Capacity),
	)

	return c, nil
}

// rankCompatible keeps candidates within both radii whose window overlaps
// the booking's by at least the configured minimum, ordered by combined
// anchor distance and then carpool age (older pools fill first).
func (s *MatcherService) rankCompatible(b *domain.Booking, candidates []*domain.Carpool) []*domain.Carpool {
	type scored struct {
		c    *domain.Carpool
		dist float64
	}

	var kept []scored
	for _, c := range candidates {
		pickupDist := geo.DistanceKM(b.Pickup, c.PickupAnchor)
		destDist := geo.DistanceKM(b.Destination, c.DestAnchor)
		if pickupDist > s.opts.PickupRadiusKM || destDist > s.opts.DestRadiusKM {
			continue
		}
		if !geo.WindowsOverlap(c.CreatedAt, c.ExpiresAt, b.CreatedAt, b.ExpiresAt, s.opts.MinOverlap) {
			continue
		}
		kept = append(kept, scored{c: c, dist: pickupDist + destDist})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].dist != kept[j].dist {
			return kept[i].dist < kept[j].dist
		}
		return kept[i].c.CreatedAt.Before(kept[j].c.CreatedAt)
	})

	res := make([]*domain.Carpool, len(kept))
	for i, sc := range kept {
		res[i] = sc.c
	}
	return res
}

func (s *MatcherService) Status(ctx context.Context, accountID, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	// Чужие брони не раскрываем.
	if b.AccountID != accountID {
		return nil, domain.ErrBookingNotFound
	}

	return b, nil
}

func (s *MatcherService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error) {
	return s.bookings.ListByAccount(ctx, accountID)
}

func (s *MatcherService) GetCarpool(ctx context.Context, id string) (*domain.Carpool, error) {
	return s.carpools.GetByID(ctx, id)
}

// Cancel is idempotent: cancelling a cancelled booking succeeds without
// effect. An assigned booking leaves its carpool under the carpool's lock,
// reopening a seat (and a full pool).
func (s *MatcherService) Cancel(ctx context.Context, accountID, bookingID string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.AccountID != accountID {
		return domain.ErrBookingNotFound
	}

	switch b.State {
	case domain.BookingStateCancelled:
		return nil
	case domain.BookingStateExpired:
		return domain.ErrBookingExpired
	case domain.BookingStateAssigned:
		if err = s.carpools.Leave(ctx, *b.CarpoolID, b.ID); err != nil {
			return fmt.Errorf("leave carpool: %w", err)
		}
	default:
		if err = s.bookings.CancelPending(ctx, b.ID); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("account_id", b.AccountID),
	)

	return nil
}

// SweepExpired advances lifecycle state: expired open/full carpools close
// (members stay assigned, the ride proceeds; closure only blocks further
// joins) and pending bookings past their window expire. Records are never
// removed.
func (s *MatcherService) SweepExpired(ctx context.Context) (domain.SweepReport, error) {
	now := s.now().UTC()

	closed, err := s.carpools.CloseExpired(ctx, now)
	if err != nil {
		return domain.SweepReport{}, fmt.Errorf("close expired carpools: %w", err)
	}

	expired, err := s.bookings.ExpirePending(ctx, now)
	if err != nil {
		return domain.SweepReport{}, fmt.Errorf("expire pending bookings: %w", err)
	}

	if len(expired) > 0 {
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return domain.SweepReport{
		ClosedCarpools:  len(closed),
		ExpiredBookings: len(expired),
	}, nil
}

func (s *MatcherService) notifyAssigned(ctx context.Context, b *domain.Booking, c *domain.Carpool) {
	account, err := s.accounts.GetByID(ctx, b.AccountID)
	if err != nil {
		s.logger.Error("failed to get account for notification",
			logger.String("account_id", b.AccountID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyAssigned(ctx, account, c)

	if c.State == domain.CarpoolStateFull {
		s.notifyFull(ctx, c)
	}
}

// notifyFull tells every rider in a filled pool that the group is complete.
func (s *MatcherService) notifyFull(ctx context.Context, c *domain.Carpool) {
	members, err := s.bookings.ListByCarpool(ctx, c.ID)
	if err != nil {
		s.logger.Error("failed to list members for notification",
			logger.String("carpool_id", c.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, m := range members {
		account, err := s.accounts.GetByID(ctx, m.AccountID)
		if err != nil {
			s.logger.Error("failed to get account for notification",
				logger.String("account_id", m.AccountID),
			)
			continue
		}
		s.notifier.NotifyCarpoolReady(ctx, account, c)
	}
}

func (s *MatcherService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		account, err := s.accounts.GetByID(ctx, b.AccountID)
		if err != nil {
			s.logger.Error("failed to get account for expiry notification",
				logger.String("account_id", b.AccountID),
			)
			continue
		}
		s.notifier.NotifyExpired(ctx, account, b)
	}
}
