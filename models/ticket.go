package models

import "time"

// Ticket statuses. A ticket closes on the first admin reply.
const (
	TicketStatusPending = "pending"
	TicketStatusClosed  = "closed"
)

type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;column:user_id" json:"user_id"`
	Title       string    `gorm:"size:80" json:"title"`
	Description string    `gorm:"size:120" json:"description"`
	Status      string    `gorm:"size:16" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
