package app_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"safestay/internal/app"
	"safestay/internal/catalog"
	"safestay/internal/domain"
)

func query() domain.Query {
	return domain.Query{
		Budget:            10000,
		Location:          "Chennai",
		AccommodationType: domain.AccommodationAll,
		RoomType:          domain.RoomTypeSingle,
		Roommates:         1,
		Sort:              domain.SortRelevance,
	}
}

func svc(t *testing.T) *app.SearchService {
	t.Helper()
	return app.NewSearchService(catalog.NewFixture(), app.DefaultTopK)
}

func fixturePool(t *testing.T) []domain.Listing {
	t.Helper()
	pool, err := catalog.NewFixture().Listings(context.Background())
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return pool
}

func TestRun_EmptyPool(t *testing.T) {
	out, err := svc(t).Run(nil, query())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("want empty result, got %d", len(out))
	}
}

func TestRun_InvalidQuery(t *testing.T) {
	s := svc(t)
	for name, q := range map[string]domain.Query{
		"zero budget":     {Budget: 0},
		"negative budget": {Budget: -100},
		"nan budget":      {Budget: math.NaN()},
		"inf budget":      {Budget: math.Inf(1)},
		"bad roommates":   {Budget: 10000, Roommates: -1},
		"bad sort":        {Budget: 10000, Sort: "rent"},
	} {
		if _, err := s.Run(fixturePool(t), q); !errors.Is(err, domain.ErrInvalidQuery) {
			t.Fatalf("%s: got err %v, want ErrInvalidQuery", name, err)
		}
	}
}

func TestSearch_ChennaiScenario(t *testing.T) {
	out, err := svc(t).Search(context.Background(), query())
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// Chennai listings within budget are ids 1 and 3; id 3 is cheaper and
	// out-ranks id 1 on relevance.
	if len(out) != 2 {
		t.Fatalf("want 2 results, got %d", len(out))
	}
	if out[0].ID != 3 || out[1].ID != 1 {
		t.Fatalf("order: got [%d %d], want [3 1]", out[0].ID, out[1].ID)
	}
	for _, rl := range out {
		if !rl.Verified {
			t.Fatalf("listing %d unexpectedly downgraded: %+v", rl.ID, rl.FraudDetails)
		}
		if float64(rl.SplitRent) != rl.Rent {
			t.Fatalf("single occupancy splitRent %d != rent %v", rl.SplitRent, rl.Rent)
		}
		if rl.Explanation == "" {
			t.Fatalf("listing %d has no explanation", rl.ID)
		}
		if rl.FraudDetails == nil {
			t.Fatalf("listing %d has no fraud details", rl.ID)
		}
	}
}

func TestRun_FilterByTypeAndBudget(t *testing.T) {
	q := query()
	q.Location = ""
	q.AccommodationType = domain.AccommodationPG
	out, err := svc(t).Run(fixturePool(t), q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, rl := range out {
		if rl.AccommodationType != domain.AccommodationPG {
			t.Fatalf("type filter leaked listing %d (%s)", rl.ID, rl.AccommodationType)
		}
		if rl.Rent > q.Budget {
			t.Fatalf("budget filter leaked listing %d (rent %v)", rl.ID, rl.Rent)
		}
	}
}

func TestRun_TruncatesToTopK(t *testing.T) {
	q := query()
	q.Location = ""
	q.Budget = 30000

	out, err := svc(t).Run(fixturePool(t), q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != app.DefaultTopK {
		t.Fatalf("want %d results, got %d", app.DefaultTopK, len(out))
	}

	minimal := app.NewSearchService(catalog.NewFixture(), 3)
	out, err = minimal.Run(fixturePool(t), q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("want 3 results, got %d", len(out))
	}
}

func TestRun_DuplicateDowngradesVerified(t *testing.T) {
	orig := domain.Listing{
		ID: 1, City: "Chennai", Title: "Budget PG in Chennai",
		Address: "Anna Nagar, Chennai", Description: "Clean rooms with mess facility",
		Rent: 7000, AccommodationType: domain.AccommodationPG,
		Rating: 4.1, SafetyScore: 4.2, Verified: true,
		Coordinates: &domain.Coordinates{Lat: 13.0850, Lng: 80.2101},
		Amenities:   []string{"wifi", "meals"},
	}
	repost := orig
	repost.ID = 2

	out, err := svc(t).Run([]domain.Listing{orig, repost}, query())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 results, got %d", len(out))
	}
	for _, rl := range out {
		if rl.Verified {
			t.Fatalf("duplicate listing %d kept verified", rl.ID)
		}
		if !rl.FraudDetails.IsDuplicate {
			t.Fatalf("listing %d missing duplicate verdict: %+v", rl.ID, rl.FraudDetails)
		}
		if rl.Explanation != "This listing appears to be a duplicate of another active listing." {
			t.Fatalf("explanation: got %q", rl.Explanation)
		}
	}
}

func TestRun_ProfileFlagsAloneDoNotDowngrade(t *testing.T) {
	q := query()
	q.Location = "Indiranagar"
	q.Budget = 30000

	// listing 8's owner has a sequential phone number: flagged, not fake
	out, err := svc(t).Run(fixturePool(t), q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].ID != 8 {
		t.Fatalf("want listing 8, got %+v", out)
	}
	rl := out[0]
	if !rl.Verified {
		t.Fatalf("flags without a fake verdict must not downgrade: %+v", rl.FraudDetails)
	}
	if len(rl.FraudDetails.FakeID.Flags) != 1 || rl.FraudDetails.FakeID.Flags[0].Type != "suspicious_phone" {
		t.Fatalf("flags: got %+v", rl.FraudDetails.FakeID.Flags)
	}
	if rl.FraudDetails.FakeID.IsFake {
		t.Fatalf("single flag must not be fake: %+v", rl.FraudDetails.FakeID)
	}
}

func TestRun_SplitRentSharing(t *testing.T) {
	q := query()
	q.RoomType = domain.RoomTypeSharing
	q.Roommates = 3

	out, err := svc(t).Run(fixturePool(t), q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, rl := range out {
		want := int64(math.Round(rl.Rent / 3))
		if rl.SplitRent != want {
			t.Fatalf("listing %d splitRent: got %d, want %d", rl.ID, rl.SplitRent, want)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	s := svc(t)
	pool := fixturePool(t)
	q := query()
	q.Location = ""
	q.Budget = 30000

	first, err := s.Run(pool, q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := s.Run(pool, q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pipeline is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRun_ExplanationTiers(t *testing.T) {
	q := query()
	q.Location = ""
	q.Budget = 30000

	out, err := svc(t).Run(fixturePool(t), q)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for _, rl := range out {
		var want string
		switch {
		case rl.SafetyScore >= 4:
			want = "and has excellent safety ratings."
		case rl.SafetyScore >= 3:
			want = "and has good safety ratings."
		default:
			want = "but has average safety ratings."
		}
		if len(rl.Explanation) < len(want) || rl.Explanation[len(rl.Explanation)-len(want):] != want {
			t.Fatalf("listing %d explanation %q missing tier %q", rl.ID, rl.Explanation, want)
		}
	}
}
