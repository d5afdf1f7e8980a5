package points

import (
	"fmt"
	"math"
	"time"

	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

type Kind string

const (
	KindEarned Kind = "EARNED"
	KindSpent  Kind = "SPENT"
	KindRefund Kind = "REFUND"
)

type Reason string

const (
	ReasonReviewWrite    Reason = "REVIEW_WRITE"
	ReasonReviewLike     Reason = "REVIEW_LIKE"
	ReasonLocationVerify Reason = "LOCATION_VERIFY"
	ReasonPurchase       Reason = "PURCHASE"
	ReasonRefund         Reason = "REFUND"
	ReasonAdminAdjust    Reason = "ADMIN_ADJUST"
)

func (r Reason) IsValid() bool {
	switch r {
	case ReasonReviewWrite,
		ReasonReviewLike,
		ReasonLocationVerify,
		ReasonPurchase,
		ReasonRefund,
		ReasonAdminAdjust:
		return true
	}
	return false
}

// Entry is one immutable ledger record. BalanceAfter is computed once, when
// the entry is appended, and is never rewritten.
type Entry struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Kind         Kind      `json:"kind"`
	Reason       Reason    `json:"reason"`
	Description  string    `json:"description,omitempty"`
	RelatedID    string    `json:"related_id,omitempty"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
}

// Posting is a balance change that has not been applied yet.
// Amount is signed: positive credits, negative debits.
type Posting struct {
	UserID      string
	Kind        Kind
	Reason      Reason
	Description string
	RelatedID   string
	Amount      int64
}

// Guard is called by a store with the user's current balance while the
// user's ledger is locked. A non-nil error aborts the append.
type Guard func(balance int64) error

// NextBalance returns balance with the posting applied. It fails instead of
// wrapping around int64.
func (p Posting) NextBalance(balance int64) (int64, error) {
	if (p.Amount > 0 && balance > math.MaxInt64-p.Amount) ||
		(p.Amount < 0 && balance < math.MinInt64-p.Amount) {
		return 0, fmt.Errorf("%w: balance %d, amount %d",
			serviceerrs.ErrBalanceOverflow, balance, p.Amount)
	}
	return balance + p.Amount, nil
}
