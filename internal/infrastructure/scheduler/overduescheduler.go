package scheduler

import (
	"context"
	"time"

	"vox/internal/shared/logger"
)

// OverdueSweeper runs one pass over assigned items past their due time
// and returns the number of alerts raised.
type OverdueSweeper interface {
	Execute(ctx context.Context) (int, error)
}

// OverdueScheduler runs the overdue sweep on a fixed interval.
type OverdueScheduler struct {
	sweeper  OverdueSweeper
	logger   logger.Interface
	stopChan chan struct{}
	interval time.Duration
}

func NewOverdueScheduler(
	sweeper OverdueSweeper,
	interval time.Duration,
	logger logger.Interface,
) *OverdueScheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &OverdueScheduler{
		sweeper:  sweeper,
		logger:   logger,
		stopChan: make(chan struct{}),
		interval: interval,
	}
}

// Start blocks until Stop is called or ctx is cancelled. Callers run it
// in its own goroutine.
func (s *OverdueScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting overdue sweep scheduler", "interval", s.interval)

	// Run immediately on start
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("overdue sweep scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("overdue sweep scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop stops the scheduler. Safe to call once.
func (s *OverdueScheduler) Stop() {
	close(s.stopChan)
}

func (s *OverdueScheduler) sweep(ctx context.Context) {
	swept, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.logger.Errorw("overdue sweep failed", "error", err)
		return
	}
	if swept > 0 {
		s.logger.Infow("overdue sweep completed", "alerted", swept)
	}
}
