package domain

import "context"

// Catalog supplies the pool a search is evaluated against. The pipeline does
// not care whether it is a fixture or a database.
type Catalog interface {
	Listings(ctx context.Context) ([]Listing, error)
}

// CatalogStore is a writable catalog, used by the seeder.
type CatalogStore interface {
	Catalog
	UpsertListing(ctx context.Context, l Listing) error
}

// FavoritesStore keeps the saved-listing set for the presentation layer.
// The search core never touches it.
type FavoritesStore interface {
	Add(ctx context.Context, listingID int64) error
	Remove(ctx context.Context, listingID int64) error
	List(ctx context.Context) ([]int64, error)
}
