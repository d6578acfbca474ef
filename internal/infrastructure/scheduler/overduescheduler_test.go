package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vox/internal/shared/logger"
)

type stubSweeper struct {
	calls atomic.Int32
}

func (s *stubSweeper) Execute(ctx context.Context) (int, error) {
	s.calls.Add(1)
	return 0, nil
}

func TestOverdueScheduler_RunsImmediatelyAndStops(t *testing.T) {
	sweeper := &stubSweeper{}
	sched := NewOverdueScheduler(sweeper, time.Hour, logger.NewLogger())

	done := make(chan struct{})
	go func() {
		sched.Start(context.Background())
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	sched.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestOverdueScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := &stubSweeper{}
	sched := NewOverdueScheduler(sweeper, time.Hour, logger.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}

func TestNewOverdueScheduler_DefaultsInterval(t *testing.T) {
	sched := NewOverdueScheduler(&stubSweeper{}, 0, logger.NewLogger())
	assert.Equal(t, 5*time.Minute, sched.interval)
}
