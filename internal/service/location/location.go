// Package location checks that a user stands close enough to a place and
// keeps a record of every check.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talx-hub/tour-points/internal/metrics"
	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/model/location"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/service/reward"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
	"github.com/talx-hub/tour-points/internal/utils/geo"
)

type Store interface {
	SavePermission(ctx context.Context, p *location.Permission) error
	ListPermissions(ctx context.Context, userID string) ([]location.Permission, error)
}

type Rewarder interface {
	Reward(ctx context.Context, userID string, event reward.Event, relatedID string,
	) (points.Entry, error)
}

type VerifyRequest struct {
	// RadiusKm selects the radius variant; nil means the fixed 100 m check.
	RadiusKm *float64
	UserID   string
	PlaceID  string
	User     geo.Point
	Place    geo.Point
}

type Service struct {
	store    Store
	rewarder Rewarder
	metrics  *metrics.Metrics
	log      *slog.Logger
}

func New(store Store, rewarder Rewarder, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		rewarder: rewarder,
		metrics:  m,
		log:      log,
	}
}

// Verify computes the distance, stores the outcome whether or not the check
// passed and, on success, fires the location reward. A failed reward is
// logged and does not fail the verification.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (location.Permission, error) {
	if err := validate(req); err != nil {
		return location.Permission{}, err
	}

	var (
		distance float64
		verified bool
		radiusM  = geo.DefaultRadiusMeters
	)
	if req.RadiusKm != nil {
		radiusM = geo.KilometersToMeters(*req.RadiusKm)
		distance, verified = geo.VerifyRadius(req.User, req.Place, *req.RadiusKm)
	} else {
		distance, verified = geo.VerifyFixed(req.User, req.Place)
	}

	p := location.Permission{
		UserID:    req.UserID,
		PlaceID:   req.PlaceID,
		UserLat:   req.User.Lat,
		UserLng:   req.User.Lng,
		PlaceLat:  req.Place.Lat,
		PlaceLng:  req.Place.Lng,
		DistanceM: distance,
		RadiusM:   radiusM,
		Verified:  verified,
	}
	if err := s.store.SavePermission(ctx, &p); err != nil {
		return location.Permission{}, fmt.Errorf("failed to save location check: %w", err)
	}
	s.metrics.RecordVerification(verified)

	if verified && s.rewarder != nil {
		if _, err := s.rewarder.Reward(ctx, req.UserID, reward.EventLocationVerified, req.PlaceID); err != nil {
			s.log.LogAttrs(ctx,
				slog.LevelError,
				"failed to reward location verification",
				slog.String("user_id", req.UserID),
				slog.String("place_id", req.PlaceID),
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}
	return p, nil
}

func (s *Service) History(ctx context.Context, userID string) ([]location.Permission, error) {
	if userID == "" {
		return nil, serviceerrs.ErrEmptyUserID
	}
	perms, err := s.store.ListPermissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list location checks for user %s: %w", userID, err)
	}
	return perms, nil
}

func validate(req VerifyRequest) error {
	var errs []error
	if req.UserID == "" {
		errs = append(errs, serviceerrs.ErrEmptyUserID)
	}
	if req.PlaceID == "" {
		errs = append(errs, serviceerrs.ErrEmptyPlaceID)
	}
	if req.RadiusKm != nil && *req.RadiusKm <= 0 {
		errs = append(errs, serviceerrs.ErrInvalidRadius)
	}
	return errors.Join(errs...)
}
