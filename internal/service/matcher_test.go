package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testOptions() MatcherOptions {
	return MatcherOptions{
		PickupRadiusKM:  5,
		DestRadiusKM:    12,
		DefaultCapacity: 4,
		MinOverlap:      time.Minute,
		BookingTTL:      10 * time.Minute,
	}
}

func newTestMatcher(t *testing.T) (*MatcherService, *mocks.MockBookingRepo, *mocks.MockCarpoolRegistry, *mocks.MockAccountRepo, *mocks.MockRideNotifier) {
	t.Helper()
	bookings := mocks.NewMockBookingRepo(t)
	carpools := mocks.NewMockCarpoolRegistry(t)
	accounts := mocks.NewMockAccountRepo(t)
	notifier := mocks.NewMockRideNotifier(t)

	svc := NewMatcherService(bookings, carpools, accounts, notifier, testOptions(), newTestLogger(t))
	return svc, bookings, carpools, accounts, notifier
}

var (
	// Центр Москвы и точка в паре сотен метров от него.
	pickupA = domain.Coordinate{Lat: 55.7558, Lon: 37.6173}
	pickupB = domain.Coordinate{Lat: 55.7580, Lon: 37.6200}
	destA   = domain.Coordinate{Lat: 55.7000, Lon: 37.5000}
	destB   = domain.Coordinate{Lat: 55.7010, Lon: 37.5020}

	// Санкт-Петербург: заведомо вне любого радиуса.
	farAway = domain.Coordinate{Lat: 59.9311, Lon: 30.3609}
)

func TestMatcherService_Submit_CreatesCarpoolWhenNoCandidates(t *testing.T) {
	svc, bookings, carpools, accounts, notifier := newTestMatcher(t)

	accounts.EXPECT().Exists(mock.Anything, "acc-1").Return(true, nil)
	bookings.EXPECT().HasActive(mock.Anything, "acc-1").Return(false, nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	carpools.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return(nil, nil)
	carpools.EXPECT().CreateWithBooking(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	accounts.EXPECT().GetByID(mock.Anything, "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	notifier.EXPECT().NotifyAssigned(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateAssigned, booking.State)
	require.NotNil(t, booking.CarpoolID)
	assert.NotEmpty(t, *booking.CarpoolID)
	assert.Equal(t, "acc-1", booking.AccountID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMatcherService_Submit_JoinsNearestCompatible(t *testing.T) {
	svc, bookings, carpools, accounts, notifier := newTestMatcher(t)

	now := time.Now().UTC()
	near := &domain.Carpool{
		ID:           "cp-near",
		State:        domain.CarpoolStateOpen,
		Capacity:     4,
		MemberCount:  1,
		PickupAnchor: pickupB,
		DestAnchor:   destB,
		CreatedAt:    now.Add(-time.Minute),
		ExpiresAt:    now.Add(9 * time.Minute),
	}
	far := &domain.Carpool{
		ID:           "cp-far",
		State:        domain.CarpoolStateOpen,
		Capacity:     4,
		MemberCount:  1,
		PickupAnchor: farAway,
		DestAnchor:   farAway,
		CreatedAt:    now.Add(-time.Minute),
		ExpiresAt:    now.Add(9 * time.Minute),
	}

	accounts.EXPECT().Exists(mock.Anything, "acc-1").Return(true, nil)
	bookings.EXPECT().HasActive(mock.Anything, "acc-1").Return(false, nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	carpools.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]*domain.Carpool{far, near}, nil)

	joined := *near
	joined.MemberCount = 2
	carpools.EXPECT().Join(mock.Anything, "cp-near", mock.Anything).Return(&joined, nil)

	accounts.EXPECT().GetByID(mock.Anything, "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	notifier.EXPECT().NotifyAssigned(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
	})

	require.NoError(t, err)
	require.NotNil(t, booking.CarpoolID)
	assert.Equal(t, "cp-near", *booking.CarpoolID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMatcherService_Submit_SkipsCandidateLostToRace(t *testing.T) {
	svc, bookings, carpools, accounts, notifier := newTestMatcher(t)

	now := time.Now().UTC()
	first := &domain.Carpool{
		ID:           "cp-1",
		State:        domain.CarpoolStateOpen,
		Capacity:     4,
		MemberCount:  3,
		PickupAnchor: pickupA,
		DestAnchor:   destA,
		CreatedAt:    now.Add(-2 * time.Minute),
		ExpiresAt:    now.Add(8 * time.Minute),
	}
	second := &domain.Carpool{
		ID:           "cp-2",
		State:        domain.CarpoolStateOpen,
		Capacity:     4,
		MemberCount:  1,
		PickupAnchor: pickupB,
		DestAnchor:   destB,
		CreatedAt:    now.Add(-time.Minute),
		ExpiresAt:    now.Add(9 * time.Minute),
	}

	accounts.EXPECT().Exists(mock.Anything, "acc-1").Return(true, nil)
	bookings.EXPECT().HasActive(mock.Anything, "acc-1").Return(false, nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	carpools.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]*domain.Carpool{first, second}, nil)

	// Первый кандидат проиграл гонку за последнее место.
	carpools.EXPECT().Join(mock.Anything, "cp-1", mock.Anything).Return(nil, domain.ErrCarpoolFull)
	joined := *second
	joined.MemberCount = 2
	carpools.EXPECT().Join(mock.Anything, "cp-2", mock.Anything).Return(&joined, nil)

	accounts.EXPECT().GetByID(mock.Anything, "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	notifier.EXPECT().NotifyAssigned(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
	})

	require.NoError(t, err)
	require.NotNil(t, booking.CarpoolID)
	assert.Equal(t, "cp-2", *booking.CarpoolID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMatcherService_Submit_CreatesCarpoolAfterExhaustedRetry(t *testing.T) {
	svc, bookings, carpools, accounts, notifier := newTestMatcher(t)

	now := time.Now().UTC()
	racy := &domain.Carpool{
		ID:           "cp-racy",
		State:        domain.CarpoolStateOpen,
		Capacity:     4,
		MemberCount:  3,
		PickupAnchor: pickupA,
		DestAnchor:   destA,
		CreatedAt:    now.Add(-time.Minute),
		ExpiresAt:    now.Add(9 * time.Minute),
	}

	accounts.EXPECT().Exists(mock.Anything, "acc-1").Return(true, nil)
	bookings.EXPECT().HasActive(mock.Anything, "acc-1").Return(false, nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	carpools.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return([]*domain.Carpool{racy}, nil).Once()
	carpools.EXPECT().Join(mock.Anything, "cp-racy", mock.Anything).Return(nil, domain.ErrCarpoolFull)
	carpools.EXPECT().FindCandidates(mock.Anything, mock.Anything).Return(nil, nil).Once()
	carpools.EXPECT().CreateWithBooking(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	accounts.EXPECT().GetByID(mock.Anything, "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	notifier.EXPECT().NotifyAssigned(mock.Anything, mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStateAssigned, booking.State)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMatcherService_Submit_RejectsInvalidCoordinates(t *testing.T) {
	svc, _, _, _, _ := newTestMatcher(t)

	_, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      domain.Coordinate{Lat: 91, Lon: 0},
		Destination: destA,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
}

func TestMatcherService_Submit_RejectsExpiryInPast(t *testing.T) {
	svc, _, _, _, _ := newTestMatcher(t)

	_, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
		ExpiresAt:   time.Now().UTC().Add(-time.Minute),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
}

func TestMatcherService_Submit_UnknownAccount(t *testing.T) {
	svc, _, _, accounts, _ := newTestMatcher(t)

	accounts.EXPECT().Exists(mock.Anything, "ghost").Return(false, nil)

	_, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "ghost",
		Pickup:      pickupA,
		Destination: destA,
	})

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMatcherService_Submit_SecondActiveBookingRejected(t *testing.T) {
	svc, bookings, _, accounts, _ := newTestMatcher(t)

	accounts.EXPECT().Exists(mock.Anything, "acc-1").Return(true, nil)
	bookings.EXPECT().HasActive(mock.Anything, "acc-1").Return(true, nil)

	_, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
	})

	assert.ErrorIs(t, err, domain.ErrActiveBookingExists)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatcherService_Submit_ActiveBookingRaceOnCreate(t *testing.T) {
	svc, bookings, _, accounts, _ := newTestMatcher(t)

	// Предварительная проверка промахнулась, уникальный индекс в Create добивает.
	accounts.EXPECT().Exists(mock.Anything, "acc-1").Return(true, nil)
	bookings.EXPECT().HasActive(mock.Anything, "acc-1").Return(false, nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrActiveBookingExists)

	_, err := svc.Submit(context.Background(), domain.SubmitBookingInput{
		AccountID:   "acc-1",
		Pickup:      pickupA,
		Destination: destA,
	})

	assert.ErrorIs(t, err, domain.ErrActiveBookingExists)
}

func TestMatcherService_RankCompatible_FiltersAndOrders(t *testing.T) {
	svc, _, _, _, _ := newTestMatcher(t)

	now := time.Now().UTC()
	b := &domain.Booking{
		Pickup:      pickupA,
		Destination: destA,
		CreatedAt:   now,
		ExpiresAt:   now.Add(10 * time.Minute),
	}

	closeBy := &domain.Carpool{
		ID: "close", PickupAnchor: pickupB, DestAnchor: destB,
		CreatedAt: now.Add(-time.Minute), ExpiresAt: now.Add(9 * time.Minute),
	}
	exact := &domain.Carpool{
		ID: "exact", PickupAnchor: pickupA, DestAnchor: destA,
		CreatedAt: now.Add(-time.Minute), ExpiresAt: now.Add(9 * time.Minute),
	}
	tooFar := &domain.Carpool{
		ID: "far", PickupAnchor: farAway, DestAnchor: destA,
		CreatedAt: now.Add(-time.Minute), ExpiresAt: now.Add(9 * time.Minute),
	}
	noOverlap := &domain.Carpool{
		ID: "stale", PickupAnchor: pickupA, DestAnchor: destA,
		CreatedAt: now.Add(-20 * time.Minute), ExpiresAt: now.Add(10 * time.Second),
	}

	ranked := svc.rankCompatible(b, []*domain.Carpool{closeBy, tooFar, exact, noOverlap})

	require.Len(t, ranked, 2)
	assert.Equal(t, "exact", ranked[0].ID)
	assert.Equal(t, "close", ranked[1].ID)
}

func TestMatcherService_Status_HidesForeignBooking(t *testing.T) {
	svc, bookings, _, _, _ := newTestMatcher(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		AccountID: "owner",
		State:     domain.BookingStatePending,
	}, nil)

	_, err := svc.Status(context.Background(), "intruder", "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestMatcherService_Cancel_Pending(t *testing.T) {
	svc, bookings, _, _, _ := newTestMatcher(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		AccountID: "acc-1",
		State:     domain.BookingStatePending,
	}, nil)
	bookings.EXPECT().CancelPending(mock.Anything, "b1").Return(nil)

	err := svc.Cancel(context.Background(), "acc-1", "b1")

	assert.NoError(t, err)
}

func TestMatcherService_Cancel_AssignedLeavesCarpool(t *testing.T) {
	svc, bookings, carpools, _, _ := newTestMatcher(t)

	carpoolID := "cp-1"
	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		AccountID: "acc-1",
		State:     domain.BookingStateAssigned,
		CarpoolID: &carpoolID,
	}, nil)
	carpools.EXPECT().Leave(mock.Anything, "cp-1", "b1").Return(nil)

	err := svc.Cancel(context.Background(), "acc-1", "b1")

	assert.NoError(t, err)
}

func TestMatcherService_Cancel_Idempotent(t *testing.T) {
	svc, bookings, _, _, _ := newTestMatcher(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		AccountID: "acc-1",
		State:     domain.BookingStateCancelled,
	}, nil)

	err := svc.Cancel(context.Background(), "acc-1", "b1")

	assert.NoError(t, err)
}

func TestMatcherService_Cancel_ExpiredRejected(t *testing.T) {
	svc, bookings, _, _, _ := newTestMatcher(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		AccountID: "acc-1",
		State:     domain.BookingStateExpired,
	}, nil)

	err := svc.Cancel(context.Background(), "acc-1", "b1")

	assert.ErrorIs(t, err, domain.ErrBookingExpired)
}

func TestMatcherService_Cancel_ForeignBooking(t *testing.T) {
	svc, bookings, _, _, _ := newTestMatcher(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		AccountID: "owner",
		State:     domain.BookingStatePending,
	}, nil)

	err := svc.Cancel(context.Background(), "intruder", "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestMatcherService_SweepExpired_Reports(t *testing.T) {
	svc, bookings, carpools, accounts, notifier := newTestMatcher(t)

	expired := []*domain.Booking{
		{ID: "b1", AccountID: "acc-1", State: domain.BookingStateExpired},
	}
	closed := []*domain.Carpool{
		{ID: "cp-1", State: domain.CarpoolStateClosed},
		{ID: "cp-2", State: domain.CarpoolStateClosed},
	}

	carpools.EXPECT().CloseExpired(mock.Anything, mock.Anything).Return(closed, nil)
	bookings.EXPECT().ExpirePending(mock.Anything, mock.Anything).Return(expired, nil)

	accounts.EXPECT().GetByID(mock.Anything, "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	notifier.EXPECT().NotifyExpired(mock.Anything, mock.Anything, mock.Anything).Return()

	report, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.ClosedCarpools)
	assert.Equal(t, 1, report.ExpiredBookings)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMatcherService_SweepExpired_CarpoolError(t *testing.T) {
	svc, _, carpools, _, _ := newTestMatcher(t)

	carpools.EXPECT().CloseExpired(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.SweepExpired(context.Background())

	assert.Error(t, err)
}
