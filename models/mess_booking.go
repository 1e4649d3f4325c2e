package models

import "time"

type MessBooking struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index;column:user_id" json:"user_id"`
	MessID        uint       `gorm:"index;column:mess_id" json:"mess_id"`
	Status        string     `gorm:"size:16" json:"status"`
	ReferenceCode string     `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`
	CheckIn       time.Time  `gorm:"column:check_in;autoCreateTime" json:"check_in"`
	CheckOut      *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Mess Mess `gorm:"foreignKey:MessID;references:ID" json:"mess,omitempty"`
}
