package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/P3chys/comments-seed/internal/database"
	"github.com/P3chys/comments-seed/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Indexer receives every seeded comment after a successful run.
type Indexer interface {
	IndexComments(comments []models.Comment) error
}

// Invalidator drops cached comment listings after a successful run.
type Invalidator interface {
	InvalidateComments(ctx context.Context) error
}

type Option func(*Seeder)

func WithIndexer(indexer Indexer) Option {
	return func(s *Seeder) {
		s.indexer = indexer
	}
}

func WithInvalidator(invalidator Invalidator) Option {
	return func(s *Seeder) {
		s.invalidator = invalidator
	}
}

// Seeder upserts the records of a comments file one at a time, in file order.
// There is no transaction around the loop: rows written before a failure
// stay written.
type Seeder struct {
	db          *gorm.DB
	out         io.Writer
	indexer     Indexer
	invalidator Invalidator
}

func NewSeeder(db *gorm.DB, out io.Writer, opts ...Option) *Seeder {
	s := &Seeder{
		db:  db,
		out: out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Result struct {
	RunID   uuid.UUID
	Path    string
	Missing bool
	Total   int
	Created int
	Updated int
}

// Run seeds the store from path. A missing file is reported on the output
// writer and is not an error. Parse, validation and store errors are returned
// as-is and stop the run.
func (s *Seeder) Run(ctx context.Context, path string) (Result, error) {
	result := Result{
		RunID: uuid.New(),
		Path:  path,
	}
	logger := log.With().Str("run_id", result.RunID.String()).Str("path", path).Logger()

	doc, err := LoadFile(path)
	if errors.Is(err, ErrFileNotFound) {
		fmt.Fprintf(s.out, "File not found: %s\n", path)
		result.Missing = true
		return result, nil
	}
	if err != nil {
		return result, err
	}

	logger.Info().Int("records", len(doc.Comments)).Msg("seeding comments")

	seeded := make([]models.Comment, 0, len(doc.Comments))
	for i, record := range doc.Comments {
		comment, err := record.Comment(i)
		if err != nil {
			return result, err
		}

		created, err := database.UpsertComment(ctx, s.db, &comment)
		if err != nil {
			return result, err
		}

		status := "updated"
		if created {
			status = "created"
			result.Created++
		} else {
			result.Updated++
		}
		logger.Debug().Int64("id", comment.ID).Str("status", status).Msg("seeded comment")

		seeded = append(seeded, comment)
	}
	result.Total = len(doc.Comments)

	s.afterSeed(ctx, logger, seeded)

	logger.Info().
		Int("total", result.Total).
		Int("created", result.Created).
		Int("updated", result.Updated).
		Msg("seed completed")
	fmt.Fprintf(s.out, "Successfully seeded %d comments\n", result.Total)

	return result, nil
}

// afterSeed runs the optional hooks. Their failures never fail the run.
func (s *Seeder) afterSeed(ctx context.Context, logger zerolog.Logger, seeded []models.Comment) {
	if s.indexer != nil && len(seeded) > 0 {
		if err := s.indexer.IndexComments(seeded); err != nil {
			logger.Warn().Err(err).Msg("failed to index comments")
		} else {
			logger.Info().Int("count", len(seeded)).Msg("indexed comments")
		}
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateComments(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to invalidate comment cache")
		}
	}
}
