package app

import (
	"fmt"
	"strings"

	"safestay/internal/domain"
)

// explain renders the recommendation blurb for one result. Unverified
// listings get a warning sentence specific to what the fraud pass found;
// verified listings get a location + budget-headroom + safety-tier sentence.
func explain(rl domain.RankedListing, budget float64) string {
	if !rl.Verified {
		if fd := rl.FraudDetails; fd != nil {
			switch {
			case fd.IsDuplicate:
				return "This listing appears to be a duplicate of another active listing."
			case fd.HasFakeID:
				return "The owner of this listing could not be verified and may be using a fake identity."
			}
		}
		return "This listing has been flagged as suspicious. The price is unusually low for the area and amenities."
	}

	var b strings.Builder
	switch {
	case rl.TravelTime != "":
		fmt.Fprintf(&b, "This %s is %s from your location, ", rl.AccommodationType, rl.TravelTime)
	case rl.City != "":
		fmt.Fprintf(&b, "This %s is in %s, ", rl.AccommodationType, rl.City)
	default:
		fmt.Fprintf(&b, "This %s is ", rl.AccommodationType)
	}

	if rl.Rent <= budget*0.8 {
		b.WriteString("well under your budget, ")
	} else {
		b.WriteString("within your budget, ")
	}

	switch {
	case rl.SafetyScore >= 4:
		b.WriteString("and has excellent safety ratings.")
	case rl.SafetyScore >= 3:
		b.WriteString("and has good safety ratings.")
	default:
		b.WriteString("but has average safety ratings.")
	}
	return b.String()
}
