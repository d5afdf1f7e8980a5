// Package reward turns domain events into fixed point credits.
package reward

import (
	"context"
	"fmt"

	"github.com/talx-hub/tour-points/internal/metrics"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

type Event string

const (
	EventReviewWritten    Event = "REVIEW_WRITTEN"
	EventLocationVerified Event = "LOCATION_VERIFIED"
)

type Rule struct {
	Reason points.Reason
	Amount int64
}

var rules = map[Event]Rule{
	EventReviewWritten:    {Amount: 10, Reason: points.ReasonReviewWrite},
	EventLocationVerified: {Amount: 5, Reason: points.ReasonLocationVerify},
}

func Lookup(e Event) (Rule, bool) {
	r, ok := rules[e]
	return r, ok
}

type Crediter interface {
	Credit(ctx context.Context,
		userID string, amount int64, reason points.Reason, description, relatedID string,
	) (points.Entry, error)
}

type Policy struct {
	ledger  Crediter
	metrics *metrics.Metrics
}

func NewPolicy(ledger Crediter, m *metrics.Metrics) *Policy {
	return &Policy{
		ledger:  ledger,
		metrics: m,
	}
}

// Reward credits the amount configured for event. relatedID is stored as is.
func (p *Policy) Reward(ctx context.Context, userID string, event Event, relatedID string,
) (points.Entry, error) {
	rule, ok := Lookup(event)
	if !ok {
		p.metrics.RecordReward(string(event), metrics.RewardResultUnknown)
		return points.Entry{}, fmt.Errorf("%w: %q", serviceerrs.ErrUnknownRewardEvent, event)
	}

	e, err := p.ledger.Credit(ctx, userID, rule.Amount, rule.Reason, "", relatedID)
	if err != nil {
		p.metrics.RecordReward(string(event), metrics.RewardResultFailed)
		return points.Entry{}, fmt.Errorf("failed to reward %s for user %s: %w", event, userID, err)
	}
	p.metrics.RecordReward(string(event), metrics.RewardResultCredited)
	return e, nil
}
