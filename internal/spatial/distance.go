package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is Earth's mean radius in kilometers
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in kilometers.
// Inputs are not range-checked; NaN or Inf propagate to the result.
//
// The points are put in a fixed order first, so swapping them gives a
// bit-identical result.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat2 < lat1 || (lat2 == lat1 && lon2 < lon1) {
		lat1, lon1, lat2, lon2 = lat2, lon2, lat1, lon1
	}
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// BoundingBox is a lat/lng rectangle, in degrees
type BoundingBox struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// BoundingBoxAround returns a box containing every point within radiusKm of (lat, lon).
// ok is false when the box would wrap the antimeridian or reach a pole; callers
// should then fall back to a full scan.
func BoundingBoxAround(lat, lon, radiusKm float64) (box BoundingBox, ok bool) {
	// Pad by 1% so points right on the circle are never clipped by rounding
	angular := radiusKm / EarthRadiusKm * 180 / math.Pi * 1.01

	box.MinLat = lat - angular
	box.MaxLat = lat + angular
	if box.MinLat <= -90 || box.MaxLat >= 90 {
		return box, false
	}

	cosLat := math.Min(math.Cos(box.MinLat*math.Pi/180), math.Cos(box.MaxLat*math.Pi/180))
	lngDelta := angular / cosLat
	box.MinLng = lon - lngDelta
	box.MaxLng = lon + lngDelta
	if box.MinLng < -180 || box.MaxLng > 180 {
		return box, false
	}

	return box, true
}
