package fraud

import (
	"math"
	"strings"

	"safestay/internal/domain"
)

// Factor weights sum to 1, so the combined score needs no normalization.
// Address carries the most weight: re-posts almost always reuse the address.
const (
	weightTitle       = 0.25
	weightAddress     = 0.30
	weightDescription = 0.15
	weightLocation    = 0.20
	weightRent        = 0.05
	weightAmenities   = 0.05
)

type listingFeatures struct {
	title       string
	address     string
	description string
	rent        float64
	amenities   []string
	coords      *domain.Coordinates
}

func extractFeatures(l domain.Listing) listingFeatures {
	return listingFeatures{
		title:       strings.ToLower(l.Title),
		address:     strings.ToLower(l.Address),
		description: strings.ToLower(l.Description),
		rent:        l.Rent,
		amenities:   l.Amenities,
		coords:      l.Coordinates,
	}
}

// ScoreSimilarity computes the duplicate-likelihood of a listing pair as the
// weighted sum of per-factor similarities. Absent fields contribute 0 via
// each factor's own empty-input rule.
func ScoreSimilarity(a, b domain.Listing) domain.SimilarityResult {
	fa := extractFeatures(a)
	fb := extractFeatures(b)

	r := domain.SimilarityResult{
		Title:       TextSimilarity(fa.title, fb.title),
		Address:     TextSimilarity(fa.address, fb.address),
		Description: TextSimilarity(fa.description, fb.description),
		Location:    LocationSimilarity(fa.coords, fb.coords),
		Rent:        rentSimilarity(fa.rent, fb.rent),
		Amenities:   amenitySimilarity(fa.amenities, fb.amenities),
	}
	r.Score = r.Title*weightTitle +
		r.Address*weightAddress +
		r.Description*weightDescription +
		r.Location*weightLocation +
		r.Rent*weightRent +
		r.Amenities*weightAmenities
	return r
}

// rentSimilarity scores the relative rent gap: equal rents score 1, a rent
// that is double the other scores 0.5. Zero or absent rent scores 0.
func rentSimilarity(r1, r2 float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	hi := math.Max(r1, r2)
	lo := math.Min(r1, r2)
	return math.Max(0, 1-(hi-lo)/hi)
}

func amenitySimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	sa := make(map[string]struct{}, len(a))
	for _, t := range a {
		sa[t] = struct{}{}
	}
	sb := make(map[string]struct{}, len(b))
	for _, t := range b {
		sb[t] = struct{}{}
	}
	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}
