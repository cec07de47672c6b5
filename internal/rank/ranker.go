package rank

import (
	"sort"

	"safestay/internal/domain"
)

// TravelTimeFn supplies a known commute time in minutes for a listing.
// Returning ok=false leaves the travel factor out of that listing's score.
// Implementations must be deterministic (or seeded by the caller) so that
// ranking the same pool twice yields the same order.
type TravelTimeFn func(l domain.Listing) (minutes int, ok bool)

// Factor weights without a travel-time signal.
const (
	weightPrice        = 0.5
	weightSafety       = 0.3
	weightVerification = 0.2
)

// Re-balanced weights when a travel-time factor participates.
const (
	travelWeightPrice        = 0.4
	travelWeightTravel       = 0.2
	travelWeightSafety       = 0.3
	travelWeightVerification = 0.1
)

type Ranker struct {
	// Travel is optional; when nil every listing is scored without the
	// travel factor.
	Travel TravelTimeFn
}

// Score combines price headroom, safety and verification into a single
// relevance value. It is unbounded: the price factor goes negative once rent
// exceeds budget, which is intended — only relative order matters.
func (r *Ranker) Score(l domain.Listing, budget float64) float64 {
	price := 1 - l.Rent/budget
	safety := l.SafetyScore / 5
	verification := 0.5
	if l.Verified {
		verification = 1
	}

	if r.Travel != nil {
		if mins, ok := r.Travel(l); ok {
			travel := 1 - float64(mins)/60
			return price*travelWeightPrice +
				travel*travelWeightTravel +
				safety*travelWeightSafety +
				verification*travelWeightVerification
		}
	}
	return price*weightPrice + safety*weightSafety + verification*weightVerification
}

// Sort orders items in place for the given key. Every order is stable, so
// ties keep their input position. The price and safety keys sort on the raw
// field; relevance sorts on the precomputed RelevanceScore.
func (r *Ranker) Sort(items []domain.RankedListing, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rent < items[j].Rent })
	case domain.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rent > items[j].Rent })
	case domain.SortSafety:
		sort.SliceStable(items, func(i, j int) bool { return items[i].SafetyScore > items[j].SafetyScore })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].RelevanceScore > items[j].RelevanceScore })
	}
}
