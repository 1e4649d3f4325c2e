package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

// Admin decisions on a pending booking.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// Resource kinds a booking can target.
const (
	ResourceRoom = "room"
	ResourceMess = "mess"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrMessNotFound    = errors.New("mess plan not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnknownDecision = errors.New("unknown decision")
	ErrUnknownResource = errors.New("unknown resource type")
)

// BookingService wraps *gorm.DB with the booking admission rules. A user
// holds at most one booking per resource type, enforced by first-match
// lookup only; there is deliberately no room availability or capacity
// check on creation.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// UserRoomBooking returns the user's first room booking row, if any.
func (s *BookingService) UserRoomBooking(userID uint) (models.RoomBooking, bool, error) {
	var booking models.RoomBooking
	err := s.DB.Where("user_id = ?", userID).Order("id").First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoomBooking{}, false, nil
	}
	if err != nil {
		return models.RoomBooking{}, false, fmt.Errorf("failed to load room booking: %w", err)
	}
	return booking, true, nil
}

// UserMessBooking returns the user's first mess booking row, if any.
func (s *BookingService) UserMessBooking(userID uint) (models.MessBooking, bool, error) {
	var booking models.MessBooking
	err := s.DB.Where("user_id = ?", userID).Order("id").First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MessBooking{}, false, nil
	}
	if err != nil {
		return models.MessBooking{}, false, fmt.Errorf("failed to load mess booking: %w", err)
	}
	return booking, true, nil
}

// CreateRoomBooking requests a room for the user. When the user already
// holds a room booking in any status the call is a no-op and the existing
// row is returned with created=false.
func (s *BookingService) CreateRoomBooking(userID, roomID uint) (models.RoomBooking, bool, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomBooking{}, false, ErrRoomNotFound
		}
		return models.RoomBooking{}, false, fmt.Errorf("failed to load room: %w", err)
	}

	existing, found, err := s.UserRoomBooking(userID)
	if err != nil {
		return models.RoomBooking{}, false, err
	}
	if found {
		return existing, false, nil
	}

	booking := models.RoomBooking{
		UserID:        userID,
		RoomID:        room.ID,
		Status:        models.BookingStatusPending,
		ReferenceCode: utils.NewReferenceCode(),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.RoomBooking{}, false, fmt.Errorf("failed to create room booking: %w", err)
	}
	return booking, true, nil
}

// CreateMessBooking is the mess-plan mirror of CreateRoomBooking.
func (s *BookingService) CreateMessBooking(userID, messID uint) (models.MessBooking, bool, error) {
	var mess models.Mess
	if err := s.DB.First(&mess, messID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MessBooking{}, false, ErrMessNotFound
		}
		return models.MessBooking{}, false, fmt.Errorf("failed to load mess plan: %w", err)
	}

	existing, found, err := s.UserMessBooking(userID)
	if err != nil {
		return models.MessBooking{}, false, err
	}
	if found {
		return existing, false, nil
	}

	booking := models.MessBooking{
		UserID:        userID,
		MessID:        mess.ID,
		Status:        models.BookingStatusPending,
		ReferenceCode: utils.NewReferenceCode(),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.MessBooking{}, false, fmt.Errorf("failed to create mess booking: %w", err)
	}
	return booking, true, nil
}

// CancelRoomBooking deletes the user's room booking row, whatever its status.
func (s *BookingService) CancelRoomBooking(userID uint) error {
	booking, found, err := s.UserRoomBooking(userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrBookingNotFound
	}
	return s.DB.Delete(&models.RoomBooking{}, booking.ID).Error
}

// CancelMessBooking deletes the user's mess booking row, whatever its status.
func (s *BookingService) CancelMessBooking(userID uint) error {
	booking, found, err := s.UserMessBooking(userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrBookingNotFound
	}
	return s.DB.Delete(&models.MessBooking{}, booking.ID).Error
}

// Decide applies an admin decision to the named user's first booking of the
// given resource type. Approve sets the status to approved, reject to
// cancelled; a rejected row is kept, never deleted. Deciding stamps
// check_out, which stays NULL until then. Concurrent decisions on the same
// row are last-write-wins.
func (s *BookingService) Decide(resource, username, decision string) error {
	var status string
	switch decision {
	case DecisionApprove:
		status = models.BookingStatusApproved
	case DecisionReject:
		status = models.BookingStatusCancelled
	default:
		return ErrUnknownDecision
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	switch resource {
	case ResourceRoom:
		booking, found, err := s.UserRoomBooking(user.ID)
		if err != nil {
			return err
		}
		if !found {
			return ErrBookingNotFound
		}
		return s.DB.Model(&models.RoomBooking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{"status": status, "check_out": time.Now()}).Error
	case ResourceMess:
		booking, found, err := s.UserMessBooking(user.ID)
		if err != nil {
			return err
		}
		if !found {
			return ErrBookingNotFound
		}
		return s.DB.Model(&models.MessBooking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{"status": status, "check_out": time.Now()}).Error
	default:
		return ErrUnknownResource
	}
}

// RoomBookingRow flattens booking, room and user columns for admin review.
type RoomBookingRow struct {
	BookingID        uint   `gorm:"column:booking_id" json:"booking_id"`
	Status           string `gorm:"column:status" json:"status"`
	ReferenceCode    string `gorm:"column:reference_code" json:"reference_code"`
	RoomID           uint   `gorm:"column:room_id" json:"room_id"`
	RoomName         string `gorm:"column:room_name" json:"room_name"`
	RoomSize         int    `gorm:"column:room_size" json:"room_size"`
	AttachedBathroom bool   `gorm:"column:attached_bathroom" json:"attached_bathroom"`
	RoomPrice        int    `gorm:"column:room_price" json:"room_price"`
	UserID           uint   `gorm:"column:user_id" json:"user_id"`
	Username         string `gorm:"column:username" json:"username"`
}

// MessBookingRow flattens booking, mess and user columns for admin review.
type MessBookingRow struct {
	BookingID       uint   `gorm:"column:booking_id" json:"booking_id"`
	Status          string `gorm:"column:status" json:"status"`
	ReferenceCode   string `gorm:"column:reference_code" json:"reference_code"`
	MessID          uint   `gorm:"column:mess_id" json:"mess_id"`
	MessName        string `gorm:"column:mess_name" json:"mess_name"`
	MessDescription string `gorm:"column:mess_description" json:"mess_description"`
	MessPrice       int    `gorm:"column:mess_price" json:"mess_price"`
	UserID          uint   `gorm:"column:user_id" json:"user_id"`
	Username        string `gorm:"column:username" json:"username"`
}

// ListRoomBookingRows joins room bookings with rooms and users. An empty
// status returns every row.
func (s *BookingService) ListRoomBookingRows(status string) ([]RoomBookingRow, error) {
	rows := []RoomBookingRow{}
	q := s.DB.Table("room_bookings").
		Select(`room_bookings.id AS booking_id, room_bookings.status AS status,
			room_bookings.reference_code AS reference_code,
			rooms.id AS room_id, rooms.name AS room_name, rooms.size AS room_size,
			rooms.attached_bathroom AS attached_bathroom, rooms.price AS room_price,
			users.id AS user_id, users.username AS username`).
		Joins("JOIN rooms ON room_bookings.room_id = rooms.id").
		Joins("JOIN users ON room_bookings.user_id = users.id").
		Order("room_bookings.id")
	if status != "" {
		q = q.Where("room_bookings.status = ?", status)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list room bookings: %w", err)
	}
	return rows, nil
}

// ListMessBookingRows joins mess bookings with mess plans and users.
func (s *BookingService) ListMessBookingRows(status string) ([]MessBookingRow, error) {
	rows := []MessBookingRow{}
	q := s.DB.Table("mess_bookings").
		Select(`mess_bookings.id AS booking_id, mess_bookings.status AS status,
			mess_bookings.reference_code AS reference_code,
			messes.id AS mess_id, messes.name AS mess_name, messes.description AS mess_description,
			messes.price AS mess_price,
			users.id AS user_id, users.username AS username`).
		Joins("JOIN messes ON mess_bookings.mess_id = messes.id").
		Joins("JOIN users ON mess_bookings.user_id = users.id").
		Order("mess_bookings.id")
	if status != "" {
		q = q.Where("mess_bookings.status = ?", status)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list mess bookings: %w", err)
	}
	return rows, nil
}
