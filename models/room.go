package models

import "time"

// Room status values: "A" (available) and "NA" (not available).
type Room struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"uniqueIndex;size:80" json:"name"`
	Size             int       `json:"size"`
	AttachedBathroom bool      `gorm:"column:attached_bathroom;default:false" json:"attached_bathroom"`
	Status           string    `gorm:"size:8" json:"status"`
	Price            int       `json:"price"`
	Description      string    `gorm:"size:120" json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
