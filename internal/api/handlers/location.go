package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/talx-hub/tour-points/internal/api/dto"
	"github.com/talx-hub/tour-points/internal/model/location"
	locsvc "github.com/talx-hub/tour-points/internal/service/location"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
	"github.com/talx-hub/tour-points/internal/utils/geo"
)

type LocationService interface {
	Verify(ctx context.Context, req locsvc.VerifyRequest) (location.Permission, error)
	History(ctx context.Context, userID string) ([]location.Permission, error)
}

type LocationHandler struct {
	userRetriever
	logger    *slog.Logger
	locations LocationService
	validator *dto.Validator
}

func NewLocationHandler(locations LocationService, log *slog.Logger) *LocationHandler {
	return &LocationHandler{
		logger:    log,
		locations: locations,
		validator: dto.NewValidator(),
	}
}

// Verify answers 200 for both outcomes; the verified flag in the body tells
// them apart.
func (h *LocationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r.Context())
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "verify request without user", err)
		return
	}

	var req dto.VerifyLocationRequest
	details, err := decodeAndValidate(r, h.validator, &req)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "invalid location request", details)
		return
	}

	p, err := h.locations.Verify(r.Context(), locsvc.VerifyRequest{
		RadiusKm: req.RadiusKm,
		UserID:   userID,
		PlaceID:  req.PlaceID,
		User:     geo.Point{Lat: *req.UserLat, Lng: *req.UserLng},
		Place:    geo.Point{Lat: *req.PlaceLat, Lng: *req.PlaceLng},
	})
	if err != nil {
		if errors.Is(err, serviceerrs.ErrInvalidRadius) ||
			errors.Is(err, serviceerrs.ErrEmptyPlaceID) {
			writeError(r.Context(), h.logger, w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		writeInternal(r.Context(), h.logger, w, "failed to verify location", err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusOK, dto.NewLocationResponse(p))
}

func (h *LocationHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r.Context())
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "location history request without user", err)
		return
	}

	perms, err := h.locations.History(r.Context(), userID)
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "failed to load location history", err)
		return
	}
	if len(perms) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]dto.LocationResponse, 0, len(perms))
	for _, p := range perms {
		resp = append(resp, dto.NewLocationResponse(p))
	}
	writeJSON(r.Context(), h.logger, w, http.StatusOK, resp)
}
