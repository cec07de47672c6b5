package mysql

const upsertListingSQL = `
INSERT INTO listings
  (id, city, title, address, description, rent, deposit, accommodation_type,
   rating, safety_score, verified, lat, lng, geohash, amenities, owner,
   travel_time, image, contact)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  city               = VALUES(city),
  title              = VALUES(title),
  address            = VALUES(address),
  description        = VALUES(description),
  rent               = VALUES(rent),
  deposit            = VALUES(deposit),
  accommodation_type = VALUES(accommodation_type),
  rating             = VALUES(rating),
  safety_score       = VALUES(safety_score),
  verified           = VALUES(verified),
  lat                = VALUES(lat),
  lng                = VALUES(lng),
  geohash            = VALUES(geohash),
  amenities          = VALUES(amenities),
  owner              = VALUES(owner),
  travel_time        = VALUES(travel_time),
  image              = VALUES(image),
  contact            = VALUES(contact),
  updated_at         = CURRENT_TIMESTAMP
`

const listListingsSQL = `
SELECT
  id, city, title, address, description, rent, deposit, accommodation_type,
  rating, safety_score, verified, lat, lng, amenities, owner,
  travel_time, image, contact
FROM listings
ORDER BY id
`
