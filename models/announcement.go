package models

import "time"

type Announcement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"uniqueIndex;size:80" json:"title"`
	Description string    `gorm:"size:120" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
