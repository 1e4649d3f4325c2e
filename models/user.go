package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:80" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:120" json:"email"`
	Password  string    `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	Admin     bool      `gorm:"default:false" json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
