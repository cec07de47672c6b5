package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	TopK        int
	SearchRPS   int
	SeedWorkers int
}

func Load() Config {
	_ = godotenv.Load() // best-effort; real env vars win over .env

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		TopK:        atoi("TOP_K", 6),
		SearchRPS:   atoi("SEARCH_RPS", 20),
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
	if c.MySQLDSN == "" {
		log.Info().Msg("MYSQL_DSN is empty, serving the built-in fixture catalog")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
