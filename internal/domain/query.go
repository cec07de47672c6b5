package domain

import (
	"fmt"
	"math"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "priceLowHigh"
	SortPriceDesc SortKey = "priceHighLow"
	SortSafety    SortKey = "safety"
)

// ParseSortKey maps the wire value to a SortKey. Empty means relevance;
// anything unknown is an invalid query rather than a silent re-sort.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortSafety:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidQuery, s)
}

const (
	RoomTypeSingle  = "single"
	RoomTypeSharing = "sharing"
)

type Query struct {
	Budget            float64 `json:"budget"`
	Location          string  `json:"location"`
	AccommodationType string  `json:"accommodationType"`
	RoomType          string  `json:"roomType"`
	Roommates         int     `json:"roommates"`
	Sort              SortKey `json:"sortKey"`
}

// Validate fails fast at the pipeline boundary; every field past here can be
// consumed without further checks.
func (q Query) Validate() error {
	if math.IsNaN(q.Budget) || math.IsInf(q.Budget, 0) || q.Budget <= 0 {
		return fmt.Errorf("%w: budget must be a positive number", ErrInvalidQuery)
	}
	if q.Roommates < 0 {
		return fmt.Errorf("%w: roommates must not be negative", ErrInvalidQuery)
	}
	switch q.Sort {
	case "", SortRelevance, SortPriceAsc, SortPriceDesc, SortSafety:
	default:
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidQuery, q.Sort)
	}
	return nil
}

// RankedListing is a listing annotated by the search pipeline: the fraud
// verdicts it was scored with, its relevance score, the per-person rent and a
// generated explanation.
type RankedListing struct {
	Listing
	RelevanceScore float64       `json:"relevanceScore"`
	SplitRent      int64         `json:"splitRent"`
	Explanation    string        `json:"aiExplanation"`
	FraudDetails   *FraudDetails `json:"fraudDetails,omitempty"`
}
