package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/P3chys/comments-seed/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(dsn, logLevel string) (*gorm.DB, error) {
	db, err := Open(postgres.Open(dsn), logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// One-shot tools issue one statement at a time.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(4)

	log.Info().Msg("database connected successfully")
	return db, nil
}

// Open opens gorm on any dialector. Tests use it with sqlite.
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	// gorm's level is the gate; its Printf lands on zerolog's debug level.
	sqlLog := log.Logger.With().Str("component", "gorm").Logger().Level(zerolog.DebugLevel)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(&sqlLog, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  ParseLogLevel(logLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	log.Info().Msg("running migrations")
	if err := db.AutoMigrate(&models.Comment{}); err != nil {
		return fmt.Errorf("failed to migrate comments: %w", err)
	}
	return nil
}

// ParseLogLevel maps DB_LOG_LEVEL onto gorm's logger levels, defaulting to warn.
func ParseLogLevel(raw string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
