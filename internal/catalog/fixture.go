package catalog

import (
	"context"
	"time"

	"safestay/internal/domain"
)

// Fixture is the built-in three-city catalog used when no database is
// configured. Listings returns a fresh copy on every call so callers can
// annotate results without bleeding state between searches.
type Fixture struct{}

func NewFixture() *Fixture { return &Fixture{} }

func (f *Fixture) Listings(ctx context.Context) ([]domain.Listing, error) {
	src := fixtureListings
	out := make([]domain.Listing, len(src))
	copy(out, src)
	return out, nil
}

func coords(lat, lng float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: lat, Lng: lng}
}

func owner(name, email, phone, address, idProof string, created time.Time, listings int) *domain.OwnerProfile {
	return &domain.OwnerProfile{
		Name: name, Email: email, Phone: phone, Address: address,
		IDProof: idProof, CreatedAt: created, ListingsCount: listings,
	}
}

var fixtureListings = []domain.Listing{
	// ---- Chennai ----
	{
		ID: 1, City: "Chennai", Title: "Budget PG in Chennai",
		Address: "Anna Nagar, Chennai", Description: "Clean twin-sharing rooms with mess facility, five minutes from the metro.",
		Rent: 7000, Deposit: 14000, AccommodationType: domain.AccommodationPG,
		Rating: 4.1, SafetyScore: 4.2, Verified: true,
		Coordinates: coords(13.0850, 80.2101),
		Amenities:   []string{"wifi", "meals", "laundry"},
		Owner:       owner("R. Srinivasan", "r.srinivasan@gmail.com", "9876543210", "Anna Nagar, Chennai", "aadhaar", time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC), 2),
		TravelTime:  "10 mins to Anna University", Contact: "919876543210",
	},
	{
		ID: 2, City: "Chennai", Title: "Luxury 3BHK Flat",
		Address: "Besant Nagar, Chennai", Description: "Sea-facing apartment with covered parking and 24x7 security.",
		Rent: 22000, Deposit: 66000, AccommodationType: domain.AccommodationFlat,
		Rating: 4.6, SafetyScore: 4.8, Verified: true,
		Coordinates: coords(12.9980, 80.2666),
		Amenities:   []string{"wifi", "parking", "security", "gym"},
		Owner:       owner("Meena Iyer", "meena.iyer@yahoo.com", "9876111222", "Besant Nagar, Chennai", "aadhaar", time.Date(2022, 11, 3, 0, 0, 0, 0, time.UTC), 1),
		TravelTime:  "5 mins to Marina Beach", Contact: "919876111222",
	},
	{
		ID: 3, City: "Chennai", Title: "Student Hostel",
		Address: "Velachery, Chennai", Description: "No-frills hostel with study hall and shared kitchen.",
		Rent: 5500, Deposit: 5500, AccommodationType: domain.AccommodationHostel,
		Rating: 3.8, SafetyScore: 3.9, Verified: true,
		Coordinates: coords(12.9758, 80.2205),
		Amenities:   []string{"wifi", "study hall"},
		Owner:       owner("K. Murugan", "k.murugan@outlook.com", "9000111333", "Velachery, Chennai", "aadhaar", time.Date(2021, 6, 20, 0, 0, 0, 0, time.UTC), 3),
		TravelTime:  "15 mins to IIT Madras", Contact: "919000111333",
	},
	{
		ID: 4, City: "Chennai", Title: "Affordable 1BHK",
		Address: "T. Nagar, Chennai", Description: "Compact flat above a quiet lane, walking distance to Pondy Bazaar.",
		Rent: 12000, Deposit: 36000, AccommodationType: domain.AccommodationFlat,
		Rating: 4.2, SafetyScore: 4.4, Verified: true,
		Coordinates: coords(13.0418, 80.2341),
		Amenities:   []string{"wifi", "parking"},
		Owner:       owner("S. Lakshmi", "s.lakshmi@gmail.com", "9000222444", "T. Nagar, Chennai", "aadhaar", time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), 1),
		TravelTime:  "Near shopping hub", Contact: "919000222444",
	},

	// ---- Bengaluru ----
	{
		ID: 5, City: "Bengaluru", Title: "PG near Christ University",
		Address: "Koramangala, Bengaluru", Description: "Girls-only PG with CCTV, warden and home-style meals.",
		Rent: 9000, Deposit: 18000, AccommodationType: domain.AccommodationPG,
		Rating: 4.3, SafetyScore: 4.5, Verified: true,
		Coordinates: coords(12.9352, 77.6245),
		Amenities:   []string{"wifi", "meals", "cctv", "laundry"},
		Owner:       owner("Anita D'Souza", "anita.dsouza@gmail.com", "7722334455", "Koramangala, Bengaluru", "aadhaar", time.Date(2022, 8, 15, 0, 0, 0, 0, time.UTC), 2),
		TravelTime:  "Walking distance to Christ University", Contact: "917722334455",
	},
	{
		ID: 6, City: "Bengaluru", Title: "2BHK Flat in Whitefield",
		Address: "Whitefield, Bengaluru", Description: "Semi-furnished flat in a gated society opposite ITPL.",
		Rent: 15000, Deposit: 45000, AccommodationType: domain.AccommodationFlat,
		Rating: 4.5, SafetyScore: 4.7, Verified: true,
		Coordinates: coords(12.9698, 77.7500),
		Amenities:   []string{"wifi", "parking", "security", "clubhouse"},
		Owner:       owner("Prakash Rao", "prakash.rao@gmail.com", "9000444555", "Whitefield, Bengaluru", "aadhaar", time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC), 1),
		TravelTime:  "Near IT Park", Contact: "919000444555",
	},
	{
		ID: 7, City: "Bengaluru", Title: "Affordable Hostel",
		Address: "Jayanagar, Bengaluru", Description: "Working men's hostel with dormitory and private rooms.",
		Rent: 6500, Deposit: 6500, AccommodationType: domain.AccommodationHostel,
		Rating: 3.9, SafetyScore: 4.0, Verified: true,
		Coordinates: coords(12.9308, 77.5838),
		Amenities:   []string{"wifi", "laundry"},
		Owner:       owner("B. Venkatesh", "venkatesh.b@yahoo.com", "9333555666", "Jayanagar, Bengaluru", "pan", time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC), 4),
		TravelTime:  "10 mins to Metro", Contact: "919333555666",
	},
	{
		ID: 8, City: "Bengaluru", Title: "Luxury 3BHK Flat",
		Address: "Indiranagar, Bengaluru", Description: "Fully furnished flat on 100 Feet Road with rooftop deck.",
		Rent: 25000, Deposit: 75000, AccommodationType: domain.AccommodationFlat,
		Rating: 4.7, SafetyScore: 4.9, Verified: true,
		Coordinates: coords(12.9719, 77.6412),
		Amenities:   []string{"wifi", "parking", "security", "gym", "rooftop"},
		// Sequential phone trips the suspicious-phone rule; a single medium
		// flag still averages below the fake-ID threshold.
		Owner:      owner("Rohit Malhotra", "rohit.malhotra@gmail.com", "1234567890", "Indiranagar, Bengaluru", "pan", time.Date(2023, 9, 28, 0, 0, 0, 0, time.UTC), 1),
		TravelTime: "Near MG Road", Contact: "919444555777",
	},

	// ---- Delhi ----
	{
		ID: 9, City: "Delhi", Title: "Girls PG in Delhi",
		Address: "Lajpat Nagar, Delhi", Description: "Secure PG with biometric entry, close to LSR College.",
		Rent: 8000, Deposit: 16000, AccommodationType: domain.AccommodationPG,
		Rating: 4.2, SafetyScore: 4.4, Verified: true,
		Coordinates: coords(28.5700, 77.2373),
		Amenities:   []string{"wifi", "meals", "cctv"},
		Owner:       owner("Sunita Sharma", "sunita.sharma@gmail.com", "9888777111", "Lajpat Nagar, Delhi", "aadhaar", time.Date(2022, 5, 18, 0, 0, 0, 0, time.UTC), 2),
		TravelTime:  "Near LSR College", Contact: "919888777111",
	},
	{
		ID: 10, City: "Delhi", Title: "Luxury Flat",
		Address: "South Extension, Delhi", Description: "Spacious builder floor with terrace and reserved parking.",
		Rent: 25000, Deposit: 75000, AccommodationType: domain.AccommodationFlat,
		Rating: 4.7, SafetyScore: 4.9, Verified: true,
		Coordinates: coords(28.5734, 77.2233),
		Amenities:   []string{"wifi", "parking", "terrace", "security"},
		Owner:       owner("Vikram Singh", "vikram.singh@outlook.com", "9333444555", "South Extension, Delhi", "aadhaar", time.Date(2023, 7, 7, 0, 0, 0, 0, time.UTC), 1),
		TravelTime:  "Near Metro Station", Contact: "919333444555",
	},
	{
		ID: 11, City: "Delhi", Title: "Hostel near DU",
		Address: "North Campus, Delhi", Description: "Student hostel a short walk from the arts faculty.",
		Rent: 6000, Deposit: 6000, AccommodationType: domain.AccommodationHostel,
		Rating: 3.7, SafetyScore: 3.8, Verified: true,
		Coordinates: coords(28.6900, 77.2100),
		Amenities:   []string{"wifi", "mess"},
		// Throwaway mail domain: flagged but, on its own, never fake.
		Owner:      owner("A. Gupta", "agupta99@mailinator.com", "9111222333", "North Campus, Delhi", "", time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), 5),
		TravelTime: "5 mins to Delhi University", Contact: "919111222333",
	},
	{
		ID: 12, City: "Delhi", Title: "Affordable 1BHK Flat",
		Address: "Dwarka, Delhi", Description: "Airy flat in Sector 10 with balcony and piped gas.",
		Rent: 12000, Deposit: 36000, AccommodationType: domain.AccommodationFlat,
		Rating: 4.0, SafetyScore: 4.2, Verified: true,
		Coordinates: coords(28.5921, 77.0460),
		Amenities:   []string{"wifi", "balcony", "parking"},
		Owner:       owner("Neha Verma", "neha.verma@gmail.com", "9555666777", "Dwarka, Delhi", "aadhaar", time.Date(2022, 10, 25, 0, 0, 0, 0, time.UTC), 1),
		TravelTime:  "Near Airport Express", Contact: "919555666777",
	},
}
