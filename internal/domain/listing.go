package domain

import "time"

const (
	AccommodationFlat   = "flat"
	AccommodationPG     = "pg"
	AccommodationHostel = "hostel"
	AccommodationAll    = "all" // query-side wildcard, never stored on a listing
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Listing struct {
	ID                int64         `json:"id"`
	City              string        `json:"city"`
	Title             string        `json:"title"`
	Address           string        `json:"address"`
	Description       string        `json:"description,omitempty"`
	Rent              float64       `json:"rent"`
	Deposit           float64       `json:"deposit,omitempty"`
	AccommodationType string        `json:"accommodationType"`
	Rating            float64       `json:"rating"`
	SafetyScore       float64       `json:"safetyScore"`
	Verified          bool          `json:"verified"`
	Coordinates       *Coordinates  `json:"coordinates,omitempty"`
	Amenities         []string      `json:"amenities,omitempty"`
	Owner             *OwnerProfile `json:"-"` // owner PII stays out of API responses
	TravelTime        string        `json:"travelTime,omitempty"`
	Image             string        `json:"image,omitempty"`
	Contact           string        `json:"contact,omitempty"`
}

// OwnerProfile is the landlord identity attached to a listing. IDProof is
// presence-only: the detector cares whether a document was supplied, not
// what it contains.
type OwnerProfile struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	IDProof       string    `json:"idProof"`
	CreatedAt     time.Time `json:"createdAt"`
	ListingsCount int       `json:"listingsCount"`
}
