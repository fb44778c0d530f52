package scheduler

import (
	"context"
	"time"

	"github.com/Jairobuifranco/A2-Group17/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventExpirer interface {
	ExpirePast(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler runs the expiry sweep once at start and then on every interval.
// A sweep never outlives its interval.
type Scheduler struct {
	events   eventExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	events eventExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		events:   events,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep returns the number of events moved to Inactive.
func (s *Scheduler) sweep(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}

	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	start := time.Now()
	expired, err := s.events.ExpirePast(sweepCtx)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			logger.String("error", err.Error()),
			logger.Duration("elapsed", time.Since(start)),
		)
		return 0
	}

	for _, e := range expired {
		s.logger.Debug("event expired",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}

	if len(expired) > 0 {
		s.logger.Info("expiry sweep finished",
			logger.Int("expired", len(expired)),
			logger.Duration("elapsed", time.Since(start)),
		)
	}

	return len(expired)
}
