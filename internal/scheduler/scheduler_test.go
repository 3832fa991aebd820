package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
	"github.com/stpnv0/RidePooler/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsBothSweeps(t *testing.T) {
	matcher := mocks.NewMockLifecycleSweeper(t)
	sessions := mocks.NewMockSessionSweeper(t)
	log := newTestLogger(t)

	s := New(matcher, sessions, 50*time.Millisecond, log)

	matcher.EXPECT().SweepExpired(mock.Anything).Return(domain.SweepReport{
		ClosedCarpools:  1,
		ExpiredBookings: 2,
	}, nil)
	sessions.EXPECT().SweepSessions(mock.Anything).Return(1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(matcher.Calls), 1)
	assert.GreaterOrEqual(t, len(sessions.Calls), 1)
}

func TestScheduler_Tick_LifecycleErrorSkipsSessionSweep(t *testing.T) {
	matcher := mocks.NewMockLifecycleSweeper(t)
	sessions := mocks.NewMockSessionSweeper(t)
	log := newTestLogger(t)

	s := New(matcher, sessions, 50*time.Millisecond, log)

	matcher.EXPECT().SweepExpired(mock.Anything).Return(domain.SweepReport{}, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(matcher.Calls), 1)
	assert.Empty(t, sessions.Calls)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	matcher := mocks.NewMockLifecycleSweeper(t)
	sessions := mocks.NewMockSessionSweeper(t)
	log := newTestLogger(t)

	s := New(matcher, sessions, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
