package rank_test

import (
	"math"
	"testing"

	"safestay/internal/domain"
	"safestay/internal/rank"
)

func listing(id int64, rent, safety float64, verified bool) domain.Listing {
	return domain.Listing{ID: id, Rent: rent, SafetyScore: safety, Verified: verified}
}

func TestScore_DefaultWeights(t *testing.T) {
	r := &rank.Ranker{}
	got := r.Score(listing(1, 7000, 4.2, true), 10000)
	want := (1-0.7)*0.5 + (4.2/5)*0.3 + 1*0.2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score: got %v, want %v", got, want)
	}
}

func TestScore_StrictlyDecreasingInRent(t *testing.T) {
	r := &rank.Ranker{}
	prev := math.Inf(1)
	for rent := 1000.0; rent <= 30000; rent += 1000 {
		s := r.Score(listing(1, rent, 4.0, true), 10000)
		if s >= prev {
			t.Fatalf("score not strictly decreasing at rent=%v: %v >= %v", rent, s, prev)
		}
		prev = s
	}
}

func TestScore_OverBudgetGoesNegativeUnclamped(t *testing.T) {
	r := &rank.Ranker{}
	// rent at 4x budget: price factor -3 dominates everything else
	if got := r.Score(listing(1, 40000, 5, true), 10000); got >= 0 {
		t.Fatalf("over-budget score should be negative, got %v", got)
	}
}

func TestScore_VerificationBoost(t *testing.T) {
	r := &rank.Ranker{}
	v := r.Score(listing(1, 5000, 4, true), 10000)
	u := r.Score(listing(2, 5000, 4, false), 10000)
	if diff := v - u; math.Abs(diff-0.1) > 1e-9 {
		t.Fatalf("verification boost: got %v, want 0.1", diff)
	}
}

func TestScore_TravelTimeRebalancesWeights(t *testing.T) {
	r := &rank.Ranker{
		Travel: func(l domain.Listing) (int, bool) { return 30, true },
	}
	got := r.Score(listing(1, 7000, 4.2, true), 10000)
	want := (1-0.7)*0.4 + (1-30.0/60)*0.2 + (4.2/5)*0.3 + 1*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("travel score: got %v, want %v", got, want)
	}

	// unknown travel time falls back to the default weights per listing
	r.Travel = func(l domain.Listing) (int, bool) { return 0, false }
	got = r.Score(listing(1, 7000, 4.2, true), 10000)
	want = (1-0.7)*0.5 + (4.2/5)*0.3 + 1*0.2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("fallback score: got %v, want %v", got, want)
	}
}

func ranked(id int64, rent, safety, score float64) domain.RankedListing {
	return domain.RankedListing{
		Listing:        domain.Listing{ID: id, Rent: rent, SafetyScore: safety},
		RelevanceScore: score,
	}
}

func ids(items []domain.RankedListing) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestSort_Keys(t *testing.T) {
	r := &rank.Ranker{}
	base := []domain.RankedListing{
		ranked(1, 9000, 3.5, 0.4),
		ranked(2, 5000, 4.8, 0.7),
		ranked(3, 7000, 4.0, 0.6),
	}

	cases := []struct {
		key  domain.SortKey
		want []int64
	}{
		{domain.SortRelevance, []int64{2, 3, 1}},
		{domain.SortPriceAsc, []int64{2, 3, 1}},
		{domain.SortPriceDesc, []int64{1, 3, 2}},
		{domain.SortSafety, []int64{2, 3, 1}},
	}
	for _, tc := range cases {
		items := make([]domain.RankedListing, len(base))
		copy(items, base)
		r.Sort(items, tc.key)
		got := ids(items)
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("sort %s: got %v, want %v", tc.key, got, tc.want)
			}
		}
	}
}

func TestSort_TiesAreStable(t *testing.T) {
	r := &rank.Ranker{}
	items := []domain.RankedListing{
		ranked(1, 7000, 4.0, 0.5),
		ranked(2, 7000, 4.0, 0.5),
		ranked(3, 7000, 4.0, 0.5),
	}
	for _, key := range []domain.SortKey{domain.SortRelevance, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortSafety} {
		r.Sort(items, key)
		got := ids(items)
		if got[0] != 1 || got[1] != 2 || got[2] != 3 {
			t.Fatalf("sort %s reordered ties: %v", key, got)
		}
	}
}
