package main

import (
	"context"
	"time"

	"github.com/P3chys/comments-seed/internal/config"
	"github.com/P3chys/comments-seed/internal/database"
	"github.com/P3chys/comments-seed/internal/logging"
	"github.com/P3chys/comments-seed/internal/models"
	"github.com/P3chys/comments-seed/internal/services"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	batchSize  = 100
	batchPause = 100 * time.Millisecond
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

	logging.Init("reindex-comments", cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	searchService := services.NewSearchService(cfg)
	log.Info().Msg("meilisearch service initialized")

	var dbCount int64
	if err := db.Model(&models.Comment{}).Count(&dbCount).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to get comment count from DB")
	}

	meiliCount, err := searchService.GetCommentCount()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get comment count from Meilisearch")
	}

	log.Info().Int64("db", dbCount).Int64("meilisearch", meiliCount).Msg("comment counts")
	if meiliCount != dbCount {
		log.Info().Msg("counts do not match, reindexing all comments")
	}

	totalIndexed, err := services.ReindexComments(context.Background(), db, searchService, batchSize, batchPause)
	if err != nil {
		log.Fatal().Err(err).Int("indexed", totalIndexed).Msg("reindexing aborted")
	}

	finalCount, err := searchService.GetCommentCount()
	if err != nil {
		log.Error().Err(err).Msg("failed to get final count")
	}

	log.Info().Int64("meilisearch", finalCount).Int("indexed", totalIndexed).Msg("reindexing completed")
}
