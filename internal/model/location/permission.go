package location

import "time"

// Permission is the outcome of one location check. Records are kept for
// failed checks too.
type Permission struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	UserLat   float64   `json:"user_lat"`
	UserLng   float64   `json:"user_lng"`
	PlaceLat  float64   `json:"place_lat"`
	PlaceLng  float64   `json:"place_lng"`
	DistanceM float64   `json:"distance_m"`
	RadiusM   float64   `json:"radius_m"`
	Verified  bool      `json:"verified"`
}
