package models

import "time"

type TicketReply struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    uint      `gorm:"index;column:ticket_id" json:"ticket_id"`
	UserID      uint      `gorm:"index;column:user_id" json:"user_id"`
	Description string    `gorm:"size:120" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Ticket Ticket `gorm:"foreignKey:TicketID;references:ID" json:"ticket,omitempty"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
