package main

import (
	"context"
	"os"

	"github.com/P3chys/comments-seed/internal/config"
	"github.com/P3chys/comments-seed/internal/database"
	"github.com/P3chys/comments-seed/internal/logging"
	"github.com/P3chys/comments-seed/internal/seed"
	"github.com/P3chys/comments-seed/internal/services"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init("seed-comments", cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	var opts []seed.Option
	if cfg.SearchIndexEnabled {
		opts = append(opts, seed.WithIndexer(services.NewSearchService(cfg)))
		log.Info().Msg("meilisearch indexing enabled")
	}
	if cfg.CacheInvalidationEnabled {
		cache, err := services.NewCacheService(cfg.RedisURL, cfg.CacheKeyPrefix)
		if err != nil {
			log.Warn().Err(err).Msg("cache invalidation disabled")
		} else {
			defer cache.Close()
			opts = append(opts, seed.WithInvalidator(cache))
		}
	}

	seeder := seed.NewSeeder(db, os.Stdout, opts...)
	if _, err := seeder.Run(context.Background(), cfg.CommentsFile()); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
