package models

import "time"

// Booking lifecycle statuses, shared by room and mess bookings.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusCancelled = "cancelled"
)

type RoomBooking struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index;column:user_id" json:"user_id"`
	RoomID        uint       `gorm:"index;column:room_id" json:"room_id"`
	Status        string     `gorm:"size:16" json:"status"`
	ReferenceCode string     `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`
	CheckIn       time.Time  `gorm:"column:check_in;autoCreateTime" json:"check_in"`
	CheckOut      *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
