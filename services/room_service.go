package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

var ErrDuplicateName = errors.New("name already exists")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	if err := s.DB.Create(room).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.First(&room, id).Error
	return room, err
}

// Update applies a partial column map; immutable columns are stripped by
// the controller before it gets here.
func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	return s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields).Error
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
