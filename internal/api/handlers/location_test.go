package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/api/handlers/mocks"
	"github.com/talx-hub/tour-points/internal/model/location"
	locsvc "github.com/talx-hub/tour-points/internal/service/location"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
	"github.com/talx-hub/tour-points/internal/utils/geo"
)

func TestLocationHandler_Verify(t *testing.T) {
	createdAt := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		userID      string
		body        string
		wantRequest *locsvc.VerifyRequest
		mockResult  func() (location.Permission, error)
		wantCode    int
		resp        string
	}{
		{
			name:   "fixed radius",
			userID: "user-1",
			body: `{"place_id":"place-1","user_lat":37.5665,"user_lng":126.978,
				"place_lat":37.5665,"place_lng":126.978}`,
			wantRequest: &locsvc.VerifyRequest{
				UserID:  "user-1",
				PlaceID: "place-1",
				User:    geo.Point{Lat: 37.5665, Lng: 126.978},
				Place:   geo.Point{Lat: 37.5665, Lng: 126.978},
			},
			mockResult: func() (location.Permission, error) {
				return location.Permission{
					ID:        "loc-1",
					UserID:    "user-1",
					PlaceID:   "place-1",
					UserLat:   37.5665,
					UserLng:   126.978,
					PlaceLat:  37.5665,
					PlaceLng:  126.978,
					RadiusM:   100,
					Verified:  true,
					CreatedAt: createdAt,
				}, nil
			},
			wantCode: http.StatusOK,
			resp: `{
				"id": "loc-1",
				"place_id": "place-1",
				"user_lat": 37.5665,
				"user_lng": 126.978,
				"place_lat": 37.5665,
				"place_lng": 126.978,
				"distance_m": 0,
				"radius_m": 100,
				"verified": true,
				"created_at": "2025-06-25T00:00:00Z"
			}`,
		},
		{
			name:   "radius in kilometres, too far",
			userID: "user-1",
			body: `{"place_id":"place-2","user_lat":0,"user_lng":0,
				"place_lat":0.01,"place_lng":0,"radius_km":1}`,
			wantRequest: &locsvc.VerifyRequest{
				RadiusKm: ptr(1.0),
				UserID:   "user-1",
				PlaceID:  "place-2",
				User:     geo.Point{Lat: 0, Lng: 0},
				Place:    geo.Point{Lat: 0.01, Lng: 0},
			},
			mockResult: func() (location.Permission, error) {
				return location.Permission{
					ID:        "loc-2",
					UserID:    "user-1",
					PlaceID:   "place-2",
					PlaceLat:  0.01,
					DistanceM: 1111.95,
					RadiusM:   1000,
					CreatedAt: createdAt,
				}, nil
			},
			wantCode: http.StatusOK,
			resp: `{
				"id": "loc-2",
				"place_id": "place-2",
				"user_lat": 0,
				"user_lng": 0,
				"place_lat": 0.01,
				"place_lng": 0,
				"distance_m": 1111.95,
				"radius_m": 1000,
				"verified": false,
				"created_at": "2025-06-25T00:00:00Z"
			}`,
		},
		{
			name:   "storage failure",
			userID: "user-1",
			body: `{"place_id":"place-1","user_lat":1,"user_lng":1,
				"place_lat":1,"place_lng":1}`,
			mockResult: func() (location.Permission, error) {
				return location.Permission{}, serviceerrs.ErrUnexpected
			},
			wantCode: http.StatusInternalServerError,
			resp:     `{"error":"internal server error"}`,
		},
		{
			name:     "latitude out of range",
			userID:   "user-1",
			body:     `{"place_id":"place-1","user_lat":91,"user_lng":0,"place_lat":0,"place_lng":0}`,
			wantCode: http.StatusBadRequest,
			resp: `{
				"error": "invalid location request",
				"details": {"user_lat": "failed on 'lte' validation"}
			}`,
		},
		{
			name:     "missing coordinate",
			userID:   "user-1",
			body:     `{"place_id":"place-1","user_lat":0,"user_lng":0,"place_lat":0}`,
			wantCode: http.StatusBadRequest,
			resp: `{
				"error": "invalid location request",
				"details": {"place_lng": "failed on 'required' validation"}
			}`,
		},
		{
			name:     "zero radius",
			userID:   "user-1",
			body:     `{"place_id":"place-1","user_lat":0,"user_lng":0,"place_lat":0,"place_lng":0,"radius_km":0}`,
			wantCode: http.StatusBadRequest,
			resp: `{
				"error": "invalid location request",
				"details": {"radius_km": "failed on 'gt' validation"}
			}`,
		},
		{
			name:     "middleware failure: no user in ctx",
			userID:   noUserInCtx,
			body:     `{"place_id":"place-1","user_lat":0,"user_lng":0,"place_lat":0,"place_lng":0}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLocationService(t)
			h := NewLocationHandler(svc, slog.Default())
			if tt.mockResult != nil {
				p, err := tt.mockResult()
				svc.EXPECT().
					Verify(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, req locsvc.VerifyRequest,
					) (location.Permission, error) {
						if tt.wantRequest != nil {
							assert.Equal(t, *tt.wantRequest, req)
						}
						return p, err
					}).
					Once()
			}

			req := newRequest(t, http.MethodPost,
				"/api/user/locations/verify", tt.body, tt.userID)
			rr := httptest.NewRecorder()
			h.Verify(rr, req)

			checkResponse(t, rr, tt.wantCode, tt.resp)
		})
	}
}

func TestLocationHandler_History(t *testing.T) {
	time1, err := time.Parse(time.RFC3339, "2025-06-25T00:00:00Z")
	require.NoError(t, err)
	time2, err := time.Parse(time.RFC3339, "2025-06-26T03:00:00Z")
	require.NoError(t, err)

	wantResponses := loadResponseFixtures(t, "testdata/get_location_history_response.json")

	tests := []struct {
		name        string
		userID      string
		mockHistory func() ([]location.Permission, error)
		wantCode    int
		resp        string
	}{
		{
			name:   "successful get location history",
			userID: "user-1",
			mockHistory: func() ([]location.Permission, error) {
				return []location.Permission{
					{
						ID:        "loc-2",
						UserID:    "user-1",
						PlaceID:   "place-2",
						PlaceLat:  0.01,
						DistanceM: 1111.95,
						RadiusM:   100,
						CreatedAt: time2,
					},
					{
						ID:        "loc-1",
						UserID:    "user-1",
						PlaceID:   "place-1",
						UserLat:   37.5665,
						UserLng:   126.978,
						PlaceLat:  37.5665,
						PlaceLng:  126.978,
						RadiusM:   100,
						Verified:  true,
						CreatedAt: time1,
					},
				}, nil
			},
			wantCode: http.StatusOK,
			resp:     wantResponses["successful get location history"],
		},
		{
			name:   "no checks yet",
			userID: "user-2",
			mockHistory: func() ([]location.Permission, error) {
				return []location.Permission{}, nil
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "storage failure",
			userID: "user-3",
			mockHistory: func() ([]location.Permission, error) {
				return nil, serviceerrs.ErrUnexpected
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "middleware failure: no user in ctx",
			userID:   noUserInCtx,
			wantCode: http.StatusInternalServerError,
		},
	}

	svc := mocks.NewMockLocationService(t)
	h := NewLocationHandler(svc, slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockHistory != nil {
				perms, err := tt.mockHistory()
				svc.EXPECT().
					History(mock.Anything, tt.userID).
					Return(perms, err).
					Once()
			}

			req := newRequest(t, http.MethodGet,
				"/api/user/locations/history", "", tt.userID)
			rr := httptest.NewRecorder()
			h.History(rr, req)

			checkResponse(t, rr, tt.wantCode, tt.resp)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
