package services

import (
	"context"
	"fmt"
	"time"

	"github.com/P3chys/comments-seed/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CommentIndexer interface {
	IndexComments(comments []models.Comment) error
}

// ReindexComments pages every stored comment into idx in id order, keyed on
// the last id seen. A failed batch is logged and skipped. pause is the delay
// between batches. It returns the number of comments indexed.
func ReindexComments(ctx context.Context, db *gorm.DB, idx CommentIndexer, batchSize int, pause time.Duration) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("invalid batch size %d", batchSize)
	}

	indexed := 0
	var lastID int64
	for first := true; ; first = false {
		if !first && pause > 0 {
			select {
			case <-ctx.Done():
				return indexed, ctx.Err()
			case <-time.After(pause):
			}
		}

		var comments []models.Comment
		err := db.WithContext(ctx).
			Where("id > ?", lastID).
			Order("id").
			Limit(batchSize).
			Find(&comments).Error
		if err != nil {
			return indexed, fmt.Errorf("failed to fetch comments after id %d: %w", lastID, err)
		}
		if len(comments) == 0 {
			return indexed, nil
		}
		lastID = comments[len(comments)-1].ID

		if err := idx.IndexComments(comments); err != nil {
			log.Error().Err(err).Int64("last_id", lastID).Msg("failed to index batch")
			continue
		}
		indexed += len(comments)
		log.Info().Int("batch", len(comments)).Int("total", indexed).Msg("indexed batch")
	}
}
