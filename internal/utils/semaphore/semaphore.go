package semaphore

import (
	"context"
	"time"

	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

// Semaphore bounds the number of reward postings in flight at once.
type Semaphore struct {
	semaCh chan struct{}
}

func New(maxInflight uint64) *Semaphore {
	if maxInflight == 0 {
		maxInflight = 1
	}
	return &Semaphore{
		semaCh: make(chan struct{}, maxInflight),
	}
}

func (s *Semaphore) AcquireWithTimeout(ctx context.Context, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint: wrapcheck // context error is returned as is
	case <-timer.C:
		return serviceerrs.ErrSemaphoreTimeoutExceeded
	case s.semaCh <- struct{}{}:
		return nil
	}
}

func (s *Semaphore) Release() {
	<-s.semaCh
}

func (s *Semaphore) InUse() int {
	return len(s.semaCh)
}
