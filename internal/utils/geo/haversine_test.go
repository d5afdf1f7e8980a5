package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var seoulCityHall = Point{Lat: 37.5665, Lng: 126.9780}

// northOf returns a point the given number of meters due north of p.
func northOf(p Point, meters float64) Point {
	return Point{
		Lat: p.Lat + meters/EarthRadiusMeters*180/math.Pi,
		Lng: p.Lng,
	}
}

func TestDistance_samePoint(t *testing.T) {
	assert.Zero(t, Distance(seoulCityHall, seoulCityHall))
}

func TestDistance_symmetric(t *testing.T) {
	points := []Point{
		seoulCityHall,
		{Lat: 35.1796, Lng: 129.0756},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0, Lng: 0},
		{Lat: 89.9, Lng: -179.9},
		{Lat: -45.5, Lng: 179.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
		}
	}
}

func TestDistance_nearAntipodesIsFinite(t *testing.T) {
	for lat := -89.75; lat < 90; lat += 0.5 {
		for lng := -180.0; lng <= 180; lng += 7.3 {
			a := Point{Lat: lat, Lng: lng}
			b := Point{Lat: -lat, Lng: lng + 180}
			d := Distance(a, b)
			assert.False(t, math.IsNaN(d), "distance between %v and %v", a, b)
			assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1,
				"distance between %v and %v", a, b)
		}
	}
}

func TestDistance_knownValues(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Point
		want  float64
		delta float64
	}{
		{
			name:  "seoul to busan",
			a:     seoulCityHall,
			b:     Point{Lat: 35.1796, Lng: 129.0756},
			want:  325_000,
			delta: 5_000,
		},
		{
			name:  "one degree of longitude at the equator",
			a:     Point{Lat: 0, Lng: 0},
			b:     Point{Lat: 0, Lng: 1},
			want:  EarthRadiusMeters * math.Pi / 180,
			delta: 1e-6,
		},
		{
			name:  "100 meters north",
			a:     seoulCityHall,
			b:     northOf(seoulCityHall, 100),
			want:  100,
			delta: 1e-6,
		},
		{
			name:  "antipodes on the equator",
			a:     Point{Lat: 0, Lng: 0},
			b:     Point{Lat: 0, Lng: 180},
			want:  math.Pi * EarthRadiusMeters,
			delta: 1e-6,
		},
		{
			name:  "antipodes through the poles",
			a:     Point{Lat: 90, Lng: 0},
			b:     Point{Lat: -90, Lng: 0},
			want:  math.Pi * EarthRadiusMeters,
			delta: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestWithin_boundary(t *testing.T) {
	tests := []struct {
		distance float64
		radius   float64
		want     bool
	}{
		{0, DefaultRadiusMeters, true},
		{99.9, DefaultRadiusMeters, true},
		{100.0, DefaultRadiusMeters, true},
		{100.1, DefaultRadiusMeters, false},
		{1500, KilometersToMeters(1.5), true},
		{1500.1, KilometersToMeters(1.5), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Within(tt.distance, tt.radius),
			"distance %v radius %v", tt.distance, tt.radius)
	}
}

func TestVerifyFixed(t *testing.T) {
	d, ok := VerifyFixed(seoulCityHall, northOf(seoulCityHall, 99.9))
	assert.True(t, ok)
	assert.InDelta(t, 99.9, d, 1e-6)

	d, ok = VerifyFixed(seoulCityHall, northOf(seoulCityHall, 100.1))
	assert.False(t, ok)
	assert.InDelta(t, 100.1, d, 1e-6)
}

func TestVerifyRadius(t *testing.T) {
	far := northOf(seoulCityHall, 2_000)

	_, ok := VerifyRadius(seoulCityHall, far, 1)
	assert.False(t, ok)

	d, ok := VerifyRadius(seoulCityHall, far, 2.5)
	assert.True(t, ok)
	assert.InDelta(t, 2_000, d, 1e-6)
}
