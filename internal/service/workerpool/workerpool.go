package workerpool

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/service/reward"
	"github.com/talx-hub/tour-points/internal/utils/logger"
)

type Rewarder interface {
	Reward(ctx context.Context, userID string, event reward.Event, relatedID string,
	) (points.Entry, error)
}

type RewardSemaphore interface {
	AcquireWithTimeout(ctx context.Context, timeout time.Duration) error
	Release()
}

type Job struct {
	UserID    string       `json:"user_id"`
	Event     reward.Event `json:"event"`
	RelatedID string       `json:"related_id,omitempty"`
}

type Result struct {
	Err   error
	Job   Job
	Entry points.Entry
}

type WorkerPool struct {
	Rewarder  Rewarder
	Sema      RewardSemaphore
	WaitGroup *sync.WaitGroup
	Jobs      <-chan Job
	// Results is optional; when nil outcomes are only logged.
	Results       chan<- Result
	OnWorkerStart func()
}

func New(
	rewarder Rewarder,
	sema RewardSemaphore,
	wg *sync.WaitGroup,
	jobs <-chan Job,
	results chan<- Result,
) *WorkerPool {
	return &WorkerPool{
		Rewarder:  rewarder,
		Sema:      sema,
		WaitGroup: wg,
		Jobs:      jobs,
		Results:   results,
	}
}

func (pool *WorkerPool) Start(ctx context.Context, workerCount int) context.CancelFunc {
	workerCtx, workerCancel := context.WithCancel(ctx)
	for range workerCount {
		pool.WaitGroup.Add(1)
		go pool.worker(workerCtx)
	}
	log := logger.FromContext(workerCtx).With("module", "worker_pool")
	log.LogAttrs(ctx, slog.LevelInfo,
		"all workers started", slog.Int("count", workerCount))

	return workerCancel
}

func (pool *WorkerPool) worker(ctx context.Context) {
	if pool.OnWorkerStart != nil {
		pool.OnWorkerStart()
	}
	defer pool.WaitGroup.Done()

	log := logger.FromContext(ctx).With("module", "worker_pool")
	defer log.LogAttrs(ctx, slog.LevelDebug, "worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-pool.Jobs:
			if !ok {
				return
			}

			if err := pool.Sema.AcquireWithTimeout(ctx, model.DefaultTimeout); err != nil {
				log.With("unit", "semaphore").LogAttrs(
					ctx,
					slog.LevelWarn,
					err.Error(),
					slog.String("user_id", job.UserID),
					slog.String("event", string(job.Event)),
				)
				pool.send(ctx, Result{Job: job, Err: err})
				continue
			}

			entry, err := pool.Rewarder.Reward(ctx, job.UserID, job.Event, job.RelatedID)
			pool.Sema.Release()

			if err != nil {
				log.LogAttrs(ctx, slog.LevelError,
					"failed to reward event",
					slog.String("user_id", job.UserID),
					slog.String("event", string(job.Event)),
					slog.Any(model.KeyLoggerError, err))
			}
			pool.send(ctx, Result{Job: job, Entry: entry, Err: err})
		}
	}
}

func (pool *WorkerPool) send(ctx context.Context, r Result) {
	if pool.Results == nil {
		return
	}
	select {
	case <-ctx.Done():
	case pool.Results <- r:
	}
}
