package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/service/reward"
	"github.com/talx-hub/tour-points/internal/service/workerpool"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// RewardConsumer reads reward events published by the review and location
// features and hands them to the reward worker pool.
type RewardConsumer struct {
	reader messageReader
	jobs   chan<- workerpool.Job
	log    *slog.Logger
}

func NewRewardConsumer(brokers []string, topic, groupID string,
	jobs chan<- workerpool.Job, log *slog.Logger,
) *RewardConsumer {
	return &RewardConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 1 << 20,
		}),
		jobs: jobs,
		log:  log,
	}
}

// Run blocks until ctx is cancelled or the reader is closed. Malformed and
// unknown events are logged and skipped.
func (c *RewardConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read reward event: %w", err)
		}

		job, err := decodeJob(msg.Value)
		if err != nil {
			c.log.LogAttrs(ctx,
				slog.LevelWarn,
				"skipping reward event",
				slog.Int64("offset", msg.Offset),
				slog.Any(model.KeyLoggerError, err),
			)
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case c.jobs <- job:
		}
	}
}

func (c *RewardConsumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return fmt.Errorf("failed to close kafka reader: %w", err)
	}
	return nil
}

func decodeJob(data []byte) (workerpool.Job, error) {
	var job workerpool.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return workerpool.Job{}, fmt.Errorf("failed to decode reward event: %w", err)
	}
	if job.UserID == "" {
		return workerpool.Job{}, errors.New("reward event without user_id")
	}
	if _, ok := reward.Lookup(job.Event); !ok {
		return workerpool.Job{}, fmt.Errorf("unknown reward event %q", job.Event)
	}
	return job, nil
}
