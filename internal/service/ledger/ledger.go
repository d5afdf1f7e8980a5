// Package ledger applies credits, debits and refunds to a user's points
// ledger and resolves the current balance.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/talx-hub/tour-points/internal/metrics"
	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

type Store interface {
	// Append atomically reads the user's balance, calls guard with it and
	// writes the entry if guard allows.
	Append(ctx context.Context, p points.Posting, guard points.Guard) (points.Entry, error)
	LastEntry(ctx context.Context, userID string) (points.Entry, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]points.Entry, error)
}

type Publisher interface {
	Publish(ctx context.Context, e points.Entry) error
}

type Service struct {
	store     Store
	publisher Publisher
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// New returns a ledger service. publisher and m may be nil.
func New(store Store, publisher Publisher, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		metrics:   m,
		log:       log,
	}
}

func (s *Service) Credit(ctx context.Context,
	userID string, amount int64, reason points.Reason, description, relatedID string,
) (points.Entry, error) {
	if err := validate(userID, amount, reason); err != nil {
		return points.Entry{}, err
	}

	return s.post(ctx, points.Posting{
		UserID:      userID,
		Kind:        points.KindEarned,
		Reason:      reason,
		Description: description,
		RelatedID:   relatedID,
		Amount:      amount,
	}, nil)
}

// Debit fails with *serviceerrs.InsufficientFundsError when amount exceeds
// the current balance; nothing is written in that case.
func (s *Service) Debit(ctx context.Context,
	userID string, amount int64, reason points.Reason, description, relatedID string,
) (points.Entry, error) {
	if err := validate(userID, amount, reason); err != nil {
		return points.Entry{}, err
	}

	e, err := s.post(ctx, points.Posting{
		UserID:      userID,
		Kind:        points.KindSpent,
		Reason:      reason,
		Description: description,
		RelatedID:   relatedID,
		Amount:      -amount,
	}, requireFunds(amount))
	if errors.Is(err, serviceerrs.ErrInsufficientFunds) {
		s.metrics.RecordInsufficientFunds()
	}
	return e, err
}

// Refund credits unconditionally. The caller is trusted to refund only what
// was spent.
func (s *Service) Refund(ctx context.Context,
	userID string, amount int64, reason points.Reason, description, relatedID string,
) (points.Entry, error) {
	if err := validate(userID, amount, reason); err != nil {
		return points.Entry{}, err
	}

	return s.post(ctx, points.Posting{
		UserID:      userID,
		Kind:        points.KindRefund,
		Reason:      reason,
		Description: description,
		RelatedID:   relatedID,
		Amount:      amount,
	}, nil)
}

func (s *Service) Purchase(ctx context.Context,
	userID, productID, productName string, pointsRequired int64,
) (points.Entry, error) {
	return s.Debit(ctx,
		userID,
		pointsRequired,
		points.ReasonPurchase,
		PurchaseDescription(productName),
		productID,
	)
}

func PurchaseDescription(productName string) string {
	return "Purchase: " + productName
}

// CurrentBalance is the BalanceAfter of the user's latest entry, or 0.
func (s *Service) CurrentBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, serviceerrs.ErrEmptyUserID
	}

	e, err := s.store.LastEntry(ctx, userID)
	if errors.Is(err, serviceerrs.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve balance for user %s: %w", userID, err)
	}
	return e.BalanceAfter, nil
}

// History returns one page of the user's entries, newest first. Pages start
// at 1; size is clamped to [1, model.MaxHistoryPageSize]. Pages whose offset
// does not fit an int32 fail with serviceerrs.ErrPageOutOfRange.
func (s *Service) History(ctx context.Context, userID string, page, size int,
) ([]points.Entry, error) {
	if userID == "" {
		return nil, serviceerrs.ErrEmptyUserID
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = model.DefaultHistoryPageSize
	}
	size = min(size, model.MaxHistoryPageSize)
	if page-1 > math.MaxInt32/size {
		return nil, fmt.Errorf("%w: page %d, size %d", serviceerrs.ErrPageOutOfRange, page, size)
	}

	entries, err := s.store.ListEntries(ctx, userID, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for user %s: %w", userID, err)
	}
	return entries, nil
}

func (s *Service) post(ctx context.Context, p points.Posting, guard points.Guard,
) (points.Entry, error) {
	e, err := s.store.Append(ctx, p, guard)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrInsufficientFunds) {
			return points.Entry{}, err //nolint: wrapcheck // callers unwrap the funds error
		}
		return points.Entry{}, fmt.Errorf("failed to append %s entry for user %s: %w",
			p.Kind, p.UserID, err)
	}
	s.metrics.RecordPosting(string(e.Kind), string(e.Reason))

	if s.publisher != nil {
		if err = s.publisher.Publish(ctx, e); err != nil {
			s.log.LogAttrs(ctx,
				slog.LevelError,
				"failed to publish ledger entry",
				slog.String("entry_id", e.ID),
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}
	return e, nil
}

func requireFunds(amount int64) points.Guard {
	return func(balance int64) error {
		if amount > balance {
			return &serviceerrs.InsufficientFundsError{
				Balance:   balance,
				Requested: amount,
			}
		}
		return nil
	}
}

func validate(userID string, amount int64, reason points.Reason) error {
	var errs []error
	if userID == "" {
		errs = append(errs, serviceerrs.ErrEmptyUserID)
	}
	if amount <= 0 {
		errs = append(errs, serviceerrs.ErrInvalidAmount)
	}
	if !reason.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %q", serviceerrs.ErrInvalidReason, reason))
	}
	return errors.Join(errs...)
}
