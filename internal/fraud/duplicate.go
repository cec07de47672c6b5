package fraud

import "safestay/internal/domain"

// DuplicateThreshold is the pairwise similarity a listing must exceed to be
// flagged as a re-post.
const DuplicateThreshold = 0.85

type DuplicateDetector struct {
	threshold float64
}

func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{threshold: DuplicateThreshold}
}

// Detect scores candidate against every listing in pool. The caller is
// responsible for excluding the candidate itself from pool.
//
// Confidence is the running maximum similarity over all comparisons, so it
// can be nonzero even when nothing crossed the threshold; only IsDuplicate
// and SimilarListings are gated by the threshold. SimilarListings keeps pool
// order.
func (d *DuplicateDetector) Detect(candidate domain.Listing, pool []domain.Listing) domain.DuplicateVerdict {
	v := domain.DuplicateVerdict{SimilarListings: []domain.SimilarListing{}}
	for _, other := range pool {
		s := ScoreSimilarity(candidate, other).Score
		if s > v.Confidence {
			v.Confidence = s
		}
		if s > d.threshold {
			v.IsDuplicate = true
			v.SimilarListings = append(v.SimilarListings, domain.SimilarListing{
				ID:         other.ID,
				Similarity: s,
			})
		}
	}
	return v
}
