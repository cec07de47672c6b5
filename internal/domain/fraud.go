package domain

// SimilarityResult is a pairwise listing comparison, decomposed per factor so
// callers can explain why two listings were considered close.
type SimilarityResult struct {
	Score       float64 `json:"score"`
	Title       float64 `json:"title"`
	Address     float64 `json:"address"`
	Description float64 `json:"description"`
	Location    float64 `json:"location"`
	Rent        float64 `json:"rent"`
	Amenities   float64 `json:"amenities"`
}

type SimilarListing struct {
	ID         int64   `json:"id"`
	Similarity float64 `json:"similarity"`
}

// DuplicateVerdict reports whether a listing looks like a re-post of another
// one in the pool. Confidence is the highest similarity observed across all
// comparisons, whether or not the duplicate threshold was crossed.
type DuplicateVerdict struct {
	IsDuplicate     bool             `json:"isDuplicate"`
	Confidence      float64          `json:"confidence"`
	SimilarListings []SimilarListing `json:"similarListings"`
}

type FraudFlag struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type FakeIDVerdict struct {
	IsFake     bool        `json:"isFake"`
	Confidence float64     `json:"confidence"`
	Flags      []FraudFlag `json:"flags"`
}

// FraudDetails is attached to each result by the search pipeline. It is
// derived on every pass and never persisted.
type FraudDetails struct {
	IsDuplicate bool             `json:"isDuplicate"`
	HasFakeID   bool             `json:"hasFakeID"`
	Duplicate   DuplicateVerdict `json:"duplicate"`
	FakeID      FakeIDVerdict    `json:"fakeId"`
}
