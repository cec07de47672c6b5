package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mmcloughlin/geohash"

	"safestay/internal/domain"
)

// geohashChars gives ~150 m cells, enough to group listings by neighbourhood
// without leaking exact coordinates into the index.
const geohashChars = 7

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	amen, _ := json.Marshal(l.Amenities)

	var ownerJSON any
	if l.Owner != nil {
		b, err := json.Marshal(l.Owner)
		if err != nil {
			return err
		}
		ownerJSON = string(b)
	}

	var lat, lng, gh any
	if c := l.Coordinates; c != nil {
		lat, lng = c.Lat, c.Lng
		gh = geohash.EncodeWithPrecision(c.Lat, c.Lng, geohashChars)
	}

	_, err := r.db.ExecContext(ctx, upsertListingSQL,
		l.ID,
		l.City,
		l.Title,
		l.Address,
		l.Description,
		l.Rent,
		l.Deposit,
		l.AccommodationType,
		l.Rating,
		l.SafetyScore,
		l.Verified,
		lat,
		lng,
		gh,
		string(amen),
		ownerJSON,
		l.TravelTime,
		l.Image,
		l.Contact,
	)
	return err
}

func (r *Repo) Listings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, listListingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var (
			l             domain.Listing
			desc          sql.NullString
			lat, lng      sql.NullFloat64
			amenitiesJSON []byte
			ownerJSON     []byte
			travel, image sql.NullString
			contact       sql.NullString
		)
		if err := rows.Scan(
			&l.ID,
			&l.City,
			&l.Title,
			&l.Address,
			&desc,
			&l.Rent,
			&l.Deposit,
			&l.AccommodationType,
			&l.Rating,
			&l.SafetyScore,
			&l.Verified,
			&lat, &lng,
			&amenitiesJSON,
			&ownerJSON,
			&travel, &image, &contact,
		); err != nil {
			return nil, err
		}

		l.Description = desc.String
		l.TravelTime = travel.String
		l.Image = image.String
		l.Contact = contact.String
		if lat.Valid && lng.Valid {
			l.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		_ = json.Unmarshal(amenitiesJSON, &l.Amenities)
		if len(ownerJSON) > 0 {
			var o domain.OwnerProfile
			if err := json.Unmarshal(ownerJSON, &o); err == nil {
				l.Owner = &o
			}
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
