package redisad

import (
	"context"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"safestay/internal/adapters/observability"
)

const favoritesKey = "favorites"

// Favorites keeps the saved-listing set in a Redis SET, the durable
// replacement for the browser-local favorites list.
type Favorites struct{ c *redis.Client }

func NewFavorites(addr, pass string, db int) *Favorites {
	return &Favorites{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (f *Favorites) Add(ctx context.Context, listingID int64) error {
	observability.ObserveFavorites("add")
	return f.c.SAdd(ctx, favoritesKey, listingID).Err()
}

func (f *Favorites) Remove(ctx context.Context, listingID int64) error {
	observability.ObserveFavorites("remove")
	return f.c.SRem(ctx, favoritesKey, listingID).Err()
}

// List returns the saved ids in ascending order; SMEMBERS order is not
// stable across calls.
func (f *Favorites) List(ctx context.Context) ([]int64, error) {
	observability.ObserveFavorites("list")
	members, err := f.c.SMembers(ctx, favoritesKey).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue // skip foreign entries rather than failing the whole list
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
