package workerpool

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/repo/memory"
	"github.com/talx-hub/tour-points/internal/service/ledger"
	"github.com/talx-hub/tour-points/internal/service/reward"
	"github.com/talx-hub/tour-points/internal/service/workerpool/mocks"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
	"github.com/talx-hub/tour-points/internal/utils/semaphore"
)

func runPool(t *testing.T, pool *WorkerPool, workers int, results chan Result) []Result {
	t.Helper()

	collected := make(chan []Result)
	go func() {
		collected <- ListenChannel(t, context.Background(), results)
	}()

	cancel := pool.Start(context.Background(), workers)
	defer cancel()
	pool.WaitGroup.Wait()
	close(results)

	return <-collected
}

func TestWorkerPool_rewards_every_job(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := ledger.New(memory.New(), nil, nil, slog.Default())
	policy := reward.NewPolicy(svc, nil)

	jobs := []Job{
		{UserID: "alice", Event: reward.EventReviewWritten, RelatedID: "r1"},
		{UserID: "alice", Event: reward.EventLocationVerified, RelatedID: "p1"},
		{UserID: "bob", Event: reward.EventReviewWritten, RelatedID: "r2"},
		{UserID: "bob", Event: "UNKNOWN"},
		{UserID: "alice", Event: reward.EventReviewWritten, RelatedID: "r3"},
	}
	results := make(chan Result)
	pool := New(policy, semaphore.New(2), &sync.WaitGroup{}, GenerateJobs(t, ctx, jobs), results)

	got := runPool(t, pool, 3, results)
	require.Len(t, got, len(jobs))

	failed := 0
	for _, r := range got {
		if r.Err != nil {
			failed++
			assert.ErrorIs(t, r.Err, serviceerrs.ErrUnknownRewardEvent)
		}
	}
	assert.Equal(t, 1, failed)

	alice, err := svc.CurrentBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(25), alice)
	bob, err := svc.CurrentBalance(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(10), bob)
}

func TestWorkerPool_semaphore_timeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sema := mocks.NewMockRewardSemaphore(t)
	sema.EXPECT().
		AcquireWithTimeout(mock.Anything, mock.Anything).
		Return(serviceerrs.ErrSemaphoreTimeoutExceeded)
	rewarder := mocks.NewMockRewarder(t)

	jobs := []Job{
		{UserID: "u1", Event: reward.EventReviewWritten},
		{UserID: "u2", Event: reward.EventReviewWritten},
	}
	results := make(chan Result)
	pool := New(rewarder, sema, &sync.WaitGroup{}, GenerateJobs(t, ctx, jobs), results)

	got := runPool(t, pool, 1, results)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.ErrorIs(t, r.Err, serviceerrs.ErrSemaphoreTimeoutExceeded)
	}
	rewarder.AssertNotCalled(t, "Reward", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	sema.AssertNotCalled(t, "Release")
}

func TestWorkerPool_releases_semaphore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sema := mocks.NewMockRewardSemaphore(t)
	sema.EXPECT().AcquireWithTimeout(mock.Anything, mock.Anything).Return(nil).Times(3)
	sema.EXPECT().Release().Return().Times(3)

	rewarder := mocks.NewMockRewarder(t)
	rewarder.EXPECT().
		Reward(mock.Anything, mock.Anything, reward.EventReviewWritten, mock.Anything).
		RunAndReturn(func(_ context.Context, userID string, _ reward.Event, relatedID string,
		) (points.Entry, error) {
			if userID == "broken" {
				return points.Entry{}, errors.New("ledger unavailable")
			}
			return points.Entry{UserID: userID, RelatedID: relatedID, Amount: 10}, nil
		})

	jobs := []Job{
		{UserID: "a", Event: reward.EventReviewWritten, RelatedID: "1"},
		{UserID: "broken", Event: reward.EventReviewWritten},
		{UserID: "b", Event: reward.EventReviewWritten, RelatedID: "2"},
	}
	results := make(chan Result)
	pool := New(rewarder, sema, &sync.WaitGroup{}, GenerateJobs(t, ctx, jobs), results)

	got := runPool(t, pool, 2, results)
	sort.Slice(got, func(i, j int) bool { return got[i].Job.UserID < got[j].Job.UserID })

	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Entry.RelatedID)
	assert.NoError(t, got[0].Err)
	assert.Equal(t, "2", got[1].Entry.RelatedID)
	assert.Error(t, got[2].Err)
}

func TestWorkerPool_Start_count_workers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rewarder := mocks.NewMockRewarder(t)
	rewarder.EXPECT().
		Reward(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(points.Entry{}, nil).
		Maybe()

	wg := &sync.WaitGroup{}
	pool := New(rewarder, semaphore.New(4), wg, GenerateInfiniteJobs(t, ctx), nil)

	var (
		mu           sync.Mutex
		startedCount int
	)
	pool.OnWorkerStart = func() {
		mu.Lock()
		defer mu.Unlock()
		startedCount++
	}

	const wantWorkers = 6
	poolCancel := pool.Start(ctx, wantWorkers)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return startedCount == wantWorkers
	}, time.Second, 10*time.Millisecond)

	poolCancel()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout: workers did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, wantWorkers, startedCount)
}
