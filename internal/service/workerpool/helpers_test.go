package workerpool

import (
	"context"
	"testing"
)

func GenerateJobs(t *testing.T, ctx context.Context, s []Job) chan Job {
	t.Helper()

	jobs := make(chan Job, len(s))

	go func() {
		defer close(jobs)
		for _, j := range s {
			select {
			case <-ctx.Done():
				return
			case jobs <- j:
			}
		}
	}()

	return jobs
}

func GenerateInfiniteJobs(t *testing.T, ctx context.Context) chan Job {
	t.Helper()

	const bigCapacity = 1024
	infiniteJobsCh := make(chan Job, bigCapacity)

	go func() {
		defer close(infiniteJobsCh)

		for {
			select {
			case <-ctx.Done():
				return
			case infiniteJobsCh <- Job{UserID: "u", Event: "REVIEW_WRITTEN"}:
			}
		}
	}()

	return infiniteJobsCh
}

func ListenChannel[T any](t *testing.T, ctx context.Context, dataCh <-chan T,
) []T {
	t.Helper()

	results := make([]T, 0)
	for {
		select {
		case <-ctx.Done():
			return results
		case data, ok := <-dataCh:
			if !ok {
				return results
			}
			results = append(results, data)
		}
	}
}
