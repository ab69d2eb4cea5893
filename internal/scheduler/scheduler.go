package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type slotSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Scheduler periodically removes availability slots whose window has passed
// without ever being booked. Bookings are never mutated here; only their
// parties or an admin may do that.
type Scheduler struct {
	slotService slotSweeper
	interval    time.Duration
	logger      logger.Logger
}

func New(
	slotService slotSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		slotService: slotService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	removed, err := s.slotService.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired slots",
			logger.String("error", err.Error()),
		)
		return
	}

	if removed > 0 {
		s.logger.Info("expired slots removed",
			logger.Int64("count", removed),
		)
	}
}
