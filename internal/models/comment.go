package models

import (
	"time"
)

// Comment ids come from the seed file; the store never generates them.
type Comment struct {
	ID     int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Author string    `gorm:"type:varchar(255);not null" json:"author"`
	Text   string    `gorm:"type:text;not null" json:"text"`
	Date   time.Time `gorm:"not null" json:"date"` // timestamptz on postgres
	Likes  int       `gorm:"not null" json:"likes"`
	Image  string    `gorm:"type:text" json:"image"`
}

func (Comment) TableName() string {
	return "comments"
}
