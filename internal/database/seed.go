package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/P3chys/comments-seed/internal/models"
	"gorm.io/gorm"
)

// UpsertComment writes comment keyed by its id. An existing row has every
// other column overwritten, zero values included; otherwise a row is inserted
// with the given id. created reports which branch ran.
func UpsertComment(ctx context.Context, db *gorm.DB, comment *models.Comment) (created bool, err error) {
	tx := db.WithContext(ctx)

	var existing models.Comment
	err = tx.Select("id").Where("id = ?", comment.ID).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(comment).Error; err != nil {
			return false, fmt.Errorf("failed to create comment %d: %w", comment.ID, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking for comment %d: %w", comment.ID, err)
	}

	err = tx.Model(&models.Comment{}).Where("id = ?", comment.ID).Updates(map[string]interface{}{
		"author": comment.Author,
		"text":   comment.Text,
		"date":   comment.Date,
		"likes":  comment.Likes,
		"image":  comment.Image,
	}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update comment %d: %w", comment.ID, err)
	}
	return false, nil
}
