package app

import (
	"context"
	"fmt"
	"math"
	"strings"

	"safestay/internal/domain"
	"safestay/internal/fraud"
	"safestay/internal/rank"
)

// DefaultTopK is the result cutoff for the full-catalog UI; the minimal
// variant runs with 3.
const DefaultTopK = 6

// SearchService is the single entry point for listing search: it filters the
// pool, annotates the survivors with fraud verdicts, ranks, truncates and
// explains. All computation is synchronous and pure over its inputs, so
// concurrent calls need no coordination.
type SearchService struct {
	catalog  domain.Catalog
	dups     *fraud.DuplicateDetector
	profiles *fraud.FakeProfileDetector
	ranker   *rank.Ranker
	topK     int
}

func NewSearchService(c domain.Catalog, topK int) *SearchService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &SearchService{
		catalog:  c,
		dups:     fraud.NewDuplicateDetector(),
		profiles: fraud.NewFakeProfileDetector(),
		ranker:   &rank.Ranker{},
		topK:     topK,
	}
}

// Search loads the pool from the catalog and runs the pipeline over it.
func (s *SearchService) Search(ctx context.Context, q domain.Query) ([]domain.RankedListing, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	pool, err := s.catalog.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return s.Run(pool, q)
}

// Run executes the pipeline over an explicit pool. Steps are total and run in
// a fixed order; an empty pool or an empty filter result yields an empty
// slice, never an error. Only a malformed query fails, before any work is
// done.
func (s *SearchService) Run(pool []domain.Listing, q domain.Query) ([]domain.RankedListing, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	survivors := filterPool(pool, q)

	results := make([]domain.RankedListing, 0, len(survivors))
	for i, l := range survivors {
		others := make([]domain.Listing, 0, len(survivors)-1)
		others = append(others, survivors[:i]...)
		others = append(others, survivors[i+1:]...)

		dup := s.dups.Detect(l, others)
		fake := s.profiles.Detect(l.Owner)

		rl := domain.RankedListing{
			Listing: l,
			FraudDetails: &domain.FraudDetails{
				IsDuplicate: dup.IsDuplicate,
				HasFakeID:   fake.IsFake,
				Duplicate:   dup,
				FakeID:      fake,
			},
		}
		// Verified reflects this pass only: a clean pass cannot re-verify a
		// listing that came in unverified.
		rl.Verified = l.Verified && !(dup.IsDuplicate || fake.IsFake)
		results = append(results, rl)
	}

	for i := range results {
		results[i].RelevanceScore = s.ranker.Score(results[i].Listing, q.Budget)
	}
	s.ranker.Sort(results, q.Sort)

	if len(results) > s.topK {
		results = results[:s.topK]
	}

	for i := range results {
		results[i].Explanation = explain(results[i], q.Budget)
		results[i].SplitRent = splitRent(results[i].Rent, q)
	}
	return results, nil
}

func filterPool(pool []domain.Listing, q domain.Query) []domain.Listing {
	loc := strings.ToLower(strings.TrimSpace(q.Location))
	atype := q.AccommodationType
	if atype == "" {
		atype = domain.AccommodationAll
	}

	out := make([]domain.Listing, 0, len(pool))
	for _, l := range pool {
		if l.Rent > q.Budget {
			continue
		}
		if atype != domain.AccommodationAll && l.AccommodationType != atype {
			continue
		}
		if loc != "" &&
			!strings.Contains(strings.ToLower(l.Address), loc) &&
			!strings.Contains(strings.ToLower(l.City), loc) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// splitRent is the per-person rent for sharing queries, whole units. Single
// occupancy pays the full rent.
func splitRent(rent float64, q domain.Query) int64 {
	n := 1
	if q.RoomType == domain.RoomTypeSharing && q.Roommates > 1 {
		n = q.Roommates
	}
	return int64(math.Round(rent / float64(n)))
}
