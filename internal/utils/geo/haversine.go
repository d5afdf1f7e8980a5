package geo

import "math"

const (
	EarthRadiusMeters   = 6_371_000.0
	DefaultRadiusMeters = 100.0
	metersInKilometer   = 1000.0
)

type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// rounding can push h just outside [0, 1] near antipodes
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Within reports whether a distance falls inside the radius; the boundary
// itself counts as inside.
func Within(distanceM, radiusM float64) bool {
	return distanceM <= radiusM
}

// VerifyFixed checks the two points against DefaultRadiusMeters.
func VerifyFixed(a, b Point) (float64, bool) {
	d := Distance(a, b)
	return d, Within(d, DefaultRadiusMeters)
}

// VerifyRadius checks the two points against a caller supplied radius given
// in kilometers.
func VerifyRadius(a, b Point, radiusKm float64) (float64, bool) {
	d := Distance(a, b)
	return d, Within(d, KilometersToMeters(radiusKm))
}

func KilometersToMeters(km float64) float64 {
	return km * metersInKilometer
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
