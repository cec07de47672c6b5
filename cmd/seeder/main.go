package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"safestay/internal/adapters/observability"
	"safestay/internal/catalog"
	"safestay/internal/shared"
	mysqlrepo "safestay/internal/storage/mysql"
)

// Seeds the MySQL catalog from the built-in fixture so the API can run
// against a database instead of in-memory data.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required for seeding")
	}
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	listings, err := catalog.NewFixture().Listings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load fixture failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, l := range listings {
		l := l

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertListing(ctx, l); err != nil {
				log.Warn().Int64("id", l.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", l.ID).Str("city", l.City).Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
