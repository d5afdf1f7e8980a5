package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/talx-hub/tour-points/internal/api/handlers/mocks"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/service/reward"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

func TestAdminHandler_Postings(t *testing.T) {
	createdAt := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	entry := func(kind points.Kind, amount, balance int64) points.Entry {
		return points.Entry{
			ID:           "entry-1",
			UserID:       "user-1",
			Kind:         kind,
			Reason:       points.ReasonAdminAdjust,
			Description:  "manual",
			Amount:       amount,
			BalanceAfter: balance,
			CreatedAt:    createdAt,
		}
	}
	entryResp := func(kind string, amount, balance int64) string {
		return fmt.Sprintf(`{
			"id": "entry-1",
			"kind": %q,
			"reason": "ADMIN_ADJUST",
			"description": "manual",
			"amount": %d,
			"balance_after": %d,
			"created_at": "2025-06-25T00:00:00Z"
		}`, kind, amount, balance)
	}
	const validBody = `{"user_id":"user-1","amount":7,"reason":"ADMIN_ADJUST","description":"manual"}`

	tests := []struct {
		name     string
		op       string
		body     string
		mockOp   func() (points.Entry, error)
		wantCode int
		resp     string
	}{
		{
			name: "credit",
			op:   "Credit",
			body: validBody,
			mockOp: func() (points.Entry, error) {
				return entry(points.KindEarned, 7, 7), nil
			},
			wantCode: http.StatusCreated,
			resp:     entryResp("EARNED", 7, 7),
		},
		{
			name: "debit",
			op:   "Debit",
			body: validBody,
			mockOp: func() (points.Entry, error) {
				return entry(points.KindSpent, -7, 3), nil
			},
			wantCode: http.StatusCreated,
			resp:     entryResp("SPENT", -7, 3),
		},
		{
			name: "debit over balance",
			op:   "Debit",
			body: validBody,
			mockOp: func() (points.Entry, error) {
				return points.Entry{}, &serviceerrs.InsufficientFundsError{Balance: 5, Requested: 7}
			},
			wantCode: http.StatusPaymentRequired,
			resp:     `{"error":"insufficient funds","balance":5,"requested":7,"shortfall":2}`,
		},
		{
			name: "refund",
			op:   "Refund",
			body: validBody,
			mockOp: func() (points.Entry, error) {
				return entry(points.KindRefund, 7, 17), nil
			},
			wantCode: http.StatusCreated,
			resp:     entryResp("REFUND", 7, 17),
		},
		{
			name: "refund storage failure",
			op:   "Refund",
			body: validBody,
			mockOp: func() (points.Entry, error) {
				return points.Entry{}, serviceerrs.ErrUnexpected
			},
			wantCode: http.StatusInternalServerError,
			resp:     `{"error":"internal server error"}`,
		},
		{
			name: "credit beyond the largest balance",
			op:   "Credit",
			body: validBody,
			mockOp: func() (points.Entry, error) {
				return points.Entry{}, fmt.Errorf("failed to append entry: %w", serviceerrs.ErrBalanceOverflow)
			},
			wantCode: http.StatusUnprocessableEntity,
			resp:     `{"error":"balance would overflow"}`,
		},
		{
			name:     "unknown reason",
			op:       "Credit",
			body:     `{"user_id":"user-1","amount":7,"reason":"BIRTHDAY"}`,
			wantCode: http.StatusBadRequest,
			resp: `{
				"error": "invalid posting request",
				"details": {"reason": "failed on 'oneof' validation"}
			}`,
		},
		{
			name:     "negative amount",
			op:       "Debit",
			body:     `{"user_id":"user-1","amount":-7,"reason":"ADMIN_ADJUST"}`,
			wantCode: http.StatusBadRequest,
			resp: `{
				"error": "invalid posting request",
				"details": {"amount": "failed on 'gt' validation"}
			}`,
		},
		{
			name:     "decoding error",
			op:       "Refund",
			body:     `[]`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := mocks.NewMockAdminLedger(t)
			h := NewAdminHandler(ledger, mocks.NewMockRewardService(t), slog.Default())

			handlers := map[string]http.HandlerFunc{
				"Credit": h.Credit,
				"Debit":  h.Debit,
				"Refund": h.Refund,
			}
			if tt.mockOp != nil {
				e, err := tt.mockOp()
				ledger.On(tt.op,
					mock.Anything,
					"user-1",
					int64(7),
					points.ReasonAdminAdjust,
					"manual",
					"",
				).Return(e, err).Once()
			}

			req := newRequest(t, http.MethodPost, "/api/admin/points", tt.body, noUserInCtx)
			rr := httptest.NewRecorder()
			handlers[tt.op](rr, req)

			checkResponse(t, rr, tt.wantCode, tt.resp)
		})
	}
}

func TestAdminHandler_Reward(t *testing.T) {
	createdAt := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		mockReward func() (points.Entry, error)
		wantCode   int
		resp       string
	}{
		{
			name: "review written",
			body: `{"user_id":"user-1","event":"REVIEW_WRITTEN","related_id":"review-1"}`,
			mockReward: func() (points.Entry, error) {
				return points.Entry{
					ID:           "entry-1",
					UserID:       "user-1",
					Kind:         points.KindEarned,
					Reason:       points.ReasonReviewWrite,
					RelatedID:    "review-1",
					Amount:       10,
					BalanceAfter: 10,
					CreatedAt:    createdAt,
				}, nil
			},
			wantCode: http.StatusCreated,
			resp: `{
				"id": "entry-1",
				"kind": "EARNED",
				"reason": "REVIEW_WRITE",
				"related_id": "review-1",
				"amount": 10,
				"balance_after": 10,
				"created_at": "2025-06-25T00:00:00Z"
			}`,
		},
		{
			name: "unknown event",
			body: `{"user_id":"user-1","event":"REVIEW_WRITTEN","related_id":"review-1"}`,
			mockReward: func() (points.Entry, error) {
				return points.Entry{}, serviceerrs.ErrUnknownRewardEvent
			},
			wantCode: http.StatusBadRequest,
			resp:     `{"error":"unknown reward event"}`,
		},
		{
			name:     "missing event",
			body:     `{"user_id":"user-1"}`,
			wantCode: http.StatusBadRequest,
			resp: `{
				"error": "invalid reward request",
				"details": {"event": "failed on 'required' validation"}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewards := mocks.NewMockRewardService(t)
			h := NewAdminHandler(mocks.NewMockAdminLedger(t), rewards, slog.Default())
			if tt.mockReward != nil {
				e, err := tt.mockReward()
				rewards.EXPECT().
					Reward(mock.Anything, "user-1", reward.EventReviewWritten, "review-1").
					Return(e, err).
					Once()
			}

			req := newRequest(t, http.MethodPost, "/api/admin/rewards", tt.body, noUserInCtx)
			rr := httptest.NewRecorder()
			h.Reward(rr, req)

			checkResponse(t, rr, tt.wantCode, tt.resp)
		})
	}
}
