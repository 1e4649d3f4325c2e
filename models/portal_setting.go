package models

import (
	"time"

	"gorm.io/datatypes"
)

// PortalSetting is a single-row table holding hostel-wide contact details
// and the mess timetable shown on the portal.
type PortalSetting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	Address     string         `gorm:"type:text" json:"address"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Email       string         `gorm:"size:150" json:"email"`
	ContactInfo datatypes.JSON `gorm:"column:contact_info" json:"contact_info,omitempty"`
	MessTimings datatypes.JSON `gorm:"column:mess_timings" json:"mess_timings,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
