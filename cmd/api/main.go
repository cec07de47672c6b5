package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "safestay/internal/adapters/http_server"
	"safestay/internal/adapters/observability"
	redisad "safestay/internal/adapters/redis"
	"safestay/internal/app"
	"safestay/internal/catalog"
	"safestay/internal/domain"
	"safestay/internal/shared"
	mysqlrepo "safestay/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: MySQL when configured, fixture otherwise
	var cat domain.Catalog = catalog.NewFixture()
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		cat = mysqlrepo.New(db)
	}

	favorites := redisad.NewFavorites(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	search := app.NewSearchService(cat, cfg.TopK)

	// http
	srv := server.New(cfg.SearchRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Search: search, Favorites: favorites})

	log.Info().Str("addr", cfg.HTTPAddr).Int("top_k", cfg.TopK).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
