package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type lifecycleSweeper interface {
	SweepExpired(ctx context.Context) (domain.SweepReport, error)
}

type sessionSweeper interface {
	SweepSessions(ctx context.Context) (int, error)
}

type Scheduler struct {
	matcher  lifecycleSweeper
	sessions sessionSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	matcher lifecycleSweeper,
	sessions sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		matcher:  matcher,
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.matcher.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("lifecycle sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.ClosedCarpools > 0 || report.ExpiredBookings > 0 {
		s.logger.Info("lifecycle sweep",
			logger.Int("closed_carpools", report.ClosedCarpools),
			logger.Int("expired_bookings", report.ExpiredBookings),
		)
	}

	removed, err := s.sessions.SweepSessions(ctx)
	if err != nil {
		s.logger.Error("session sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if removed > 0 {
		s.logger.Info("expired sessions removed",
			logger.Int("count", removed),
		)
	}
}
