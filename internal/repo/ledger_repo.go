package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/repo/internal/db"
)

type LedgerRepository struct {
	DB
}

func NewLedgerRepository(pool connectionPool, log *slog.Logger) *LedgerRepository {
	return &LedgerRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Append locks the user's account row, hands the current balance to guard
// and inserts the entry in the same transaction. Concurrent appends for one
// user are serialized by the row lock.
func (r *LedgerRepository) Append(ctx context.Context,
	p points.Posting, guard points.Guard,
) (points.Entry, error) {
	appendLogic := func(ctx context.Context, tx connectionPool) (any, error) {
		queries := db.New(tx)
		if err := queries.EnsureAccount(ctx, p.UserID); err != nil {
			return points.Entry{}, fmt.Errorf("failed to create account for user %s: %w", p.UserID, err)
		}
		if _, err := queries.LockAccount(ctx, p.UserID); err != nil {
			return points.Entry{}, fmt.Errorf("failed to lock account for user %s: %w", p.UserID, err)
		}

		balance, err := queries.LatestBalance(ctx, p.UserID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return points.Entry{}, fmt.Errorf("failed to read balance for user %s: %w", p.UserID, err)
		}
		if guard != nil {
			if err = guard(balance); err != nil {
				return points.Entry{}, err
			}
		}
		balanceAfter, err := p.NextBalance(balance)
		if err != nil {
			return points.Entry{}, err
		}

		id := uuid.New()
		e := points.Entry{
			CreatedAt:    now(),
			ID:           id.String(),
			UserID:       p.UserID,
			Kind:         p.Kind,
			Reason:       p.Reason,
			Description:  p.Description,
			RelatedID:    p.RelatedID,
			Amount:       p.Amount,
			BalanceAfter: balanceAfter,
		}
		if err = queries.InsertEntry(ctx, db.InsertEntryParams{
			ID:           pgtype.UUID{Bytes: id, Valid: true},
			UserID:       e.UserID,
			Amount:       e.Amount,
			Kind:         string(e.Kind),
			Reason:       string(e.Reason),
			Description:  toPGText(e.Description),
			RelatedID:    toPGText(e.RelatedID),
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    toPGTime(e.CreatedAt),
		}); err != nil {
			return points.Entry{}, fmt.Errorf("failed to insert ledger entry: %w", err)
		}
		if err = queries.UpdateAccountBalance(ctx, db.UpdateAccountBalanceParams{
			UserID:    e.UserID,
			Balance:   e.BalanceAfter,
			UpdatedAt: toPGTime(e.CreatedAt),
		}); err != nil {
			return points.Entry{}, fmt.Errorf("failed to update account balance: %w", err)
		}

		return e, nil
	}

	appendWithTX := func() (points.Entry, error) {
		return WithTX[points.Entry](ctx, r.pool, r.log, appendLogic)
	}
	return WithRetry[points.Entry](appendWithTX, 0)
}

func (r *LedgerRepository) LastEntry(ctx context.Context, userID string,
) (points.Entry, error) {
	lastLogic := func() (points.Entry, error) {
		queries := db.New(r.pool)
		row, err := queries.LatestEntry(ctx, userID)
		if err != nil {
			return points.Entry{}, notFound(err, "failed to find latest entry for user %s", userID)
		}
		return toEntry(db.ListEntriesRow(row)), nil
	}

	return WithRetry[points.Entry](lastLogic, 0)
}

func (r *LedgerRepository) ListEntries(ctx context.Context,
	userID string, limit, offset int,
) ([]points.Entry, error) {
	if offset < 0 || offset > math.MaxInt32 || limit <= 0 || limit > math.MaxInt32 {
		return []points.Entry{}, nil
	}

	listLogic := func() ([]points.Entry, error) {
		queries := db.New(r.pool)
		rows, err := queries.ListEntries(ctx, db.ListEntriesParams{
			UserID: userID,
			Limit:  int32(limit),  //nolint:gosec // checked above
			Offset: int32(offset), //nolint:gosec // checked above
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list entries for user %s: %w", userID, err)
		}

		entries := make([]points.Entry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, toEntry(row))
		}
		return entries, nil
	}

	return WithRetry[[]points.Entry](listLogic, 0)
}

func toEntry(row db.ListEntriesRow) points.Entry {
	return points.Entry{
		CreatedAt:    row.CreatedAt.Time.UTC(),
		ID:           row.ID,
		UserID:       row.UserID,
		Kind:         points.Kind(row.Kind),
		Reason:       points.Reason(row.Reason),
		Description:  row.Description.String,
		RelatedID:    row.RelatedID.String,
		Amount:       row.Amount,
		BalanceAfter: row.BalanceAfter,
	}
}
