package reward

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/repo/memory"
	"github.com/talx-hub/tour-points/internal/service/ledger"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		event  Event
		want   Rule
		wantOK bool
	}{
		{EventReviewWritten, Rule{Amount: 10, Reason: points.ReasonReviewWrite}, true},
		{EventLocationVerified, Rule{Amount: 5, Reason: points.ReasonLocationVerify}, true},
		{"REVIEW_LIKED", Rule{}, false},
		{"", Rule{}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			got, ok := Lookup(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_Reward(t *testing.T) {
	svc := ledger.New(memory.New(), nil, nil, slog.Default())
	p := NewPolicy(svc, nil)
	ctx := context.Background()

	e, err := p.Reward(ctx, "traveller", EventReviewWritten, "review-77")
	require.NoError(t, err)
	assert.Equal(t, int64(10), e.Amount)
	assert.Equal(t, points.ReasonReviewWrite, e.Reason)
	assert.Equal(t, points.KindEarned, e.Kind)
	assert.Equal(t, "review-77", e.RelatedID)

	e, err = p.Reward(ctx, "traveller", EventLocationVerified, "")
	require.NoError(t, err)
	assert.Equal(t, int64(15), e.BalanceAfter)
	assert.Equal(t, points.ReasonLocationVerify, e.Reason)

	_, err = p.Reward(ctx, "traveller", "PHOTO_UPLOADED", "")
	require.ErrorIs(t, err, serviceerrs.ErrUnknownRewardEvent)

	_, err = p.Reward(ctx, "", EventReviewWritten, "")
	require.ErrorIs(t, err, serviceerrs.ErrEmptyUserID)

	b, err := svc.CurrentBalance(ctx, "traveller")
	require.NoError(t, err)
	assert.Equal(t, int64(15), b)
}

type failingCrediter struct{}

func (failingCrediter) Credit(context.Context, string, int64, points.Reason, string, string,
) (points.Entry, error) {
	return points.Entry{}, errors.New("db down")
}

func TestPolicy_Reward_credit_failure(t *testing.T) {
	p := NewPolicy(failingCrediter{}, nil)
	_, err := p.Reward(context.Background(), "u", EventReviewWritten, "")
	assert.EqualError(t, err, "failed to reward REVIEW_WRITTEN for user u: db down")
}
