package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/talx-hub/tour-points/internal/model/location"
	"github.com/talx-hub/tour-points/internal/repo/internal/db"
)

type LocationRepository struct {
	DB
}

func NewLocationRepository(pool connectionPool, log *slog.Logger) *LocationRepository {
	return &LocationRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// SavePermission stores p and fills in its ID and CreatedAt.
func (r *LocationRepository) SavePermission(ctx context.Context, p *location.Permission) error {
	id := uuid.New()
	createdAt := now()

	saveLogic := func() (struct{}, error) {
		queries := db.New(r.pool)
		if err := queries.InsertPermission(ctx, db.InsertPermissionParams{
			ID:        pgtype.UUID{Bytes: id, Valid: true},
			UserID:    p.UserID,
			PlaceID:   p.PlaceID,
			UserLat:   p.UserLat,
			UserLng:   p.UserLng,
			PlaceLat:  p.PlaceLat,
			PlaceLng:  p.PlaceLng,
			DistanceM: p.DistanceM,
			RadiusM:   p.RadiusM,
			Verified:  p.Verified,
			CreatedAt: toPGTime(createdAt),
		}); err != nil {
			return struct{}{}, fmt.Errorf("failed to insert location permission: %w", err)
		}
		return struct{}{}, nil
	}

	if _, err := WithRetry[struct{}](saveLogic, 0); err != nil {
		return err //nolint: wrapcheck // error from wrapped function
	}
	p.ID = id.String()
	p.CreatedAt = createdAt
	return nil
}

func (r *LocationRepository) ListPermissions(ctx context.Context, userID string,
) ([]location.Permission, error) {
	listLogic := func() ([]location.Permission, error) {
		queries := db.New(r.pool)
		rows, err := queries.ListPermissionsByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list location permissions for user %s: %w", userID, err)
		}

		perms := make([]location.Permission, 0, len(rows))
		for _, row := range rows {
			perms = append(perms, location.Permission{
				CreatedAt: row.CreatedAt.Time.UTC(),
				ID:        row.ID,
				UserID:    row.UserID,
				PlaceID:   row.PlaceID,
				UserLat:   row.UserLat,
				UserLng:   row.UserLng,
				PlaceLat:  row.PlaceLat,
				PlaceLng:  row.PlaceLng,
				DistanceM: row.DistanceM,
				RadiusM:   row.RadiusM,
				Verified:  row.Verified,
			})
		}
		return perms, nil
	}

	return WithRetry[[]location.Permission](listLogic, 0)
}
