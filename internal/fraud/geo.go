package fraud

import (
	"math"

	"safestay/internal/domain"
)

const (
	earthRadiusMeters = 6_371_000

	// Listings further apart than this are considered unrelated locations.
	proximityCutoffMeters = 2000
)

// LocationSimilarity maps the great-circle distance between two points to
// [0,1]: identical points score 1, anything at or beyond the cutoff scores 0,
// linear in between. Missing coordinates on either side score 0.
func LocationSimilarity(a, b *domain.Coordinates) float64 {
	if a == nil || b == nil {
		return 0
	}
	d := haversineMeters(a.Lat, a.Lng, b.Lat, b.Lng)
	return math.Max(0, 1-d/proximityCutoffMeters)
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dp := (lat2 - lat1) * math.Pi / 180
	dl := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dp/2)*math.Sin(dp/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}
