package models

import "time"

// Mess is a canteen subscription plan. Status uses the same "A"/"NA"
// availability flags as Room.
type Mess struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:80" json:"name"`
	Description string    `gorm:"size:120" json:"description"`
	Status      string    `gorm:"size:8" json:"status"`
	Price       int       `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
