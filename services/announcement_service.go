package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

var (
	ErrDuplicateTitle       = errors.New("announcement title already exists")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

type AnnouncementService struct {
	DB *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{DB: db}
}

func (s *AnnouncementService) Create(title, description string) (models.Announcement, error) {
	a := models.Announcement{Title: title, Description: description}
	if err := s.DB.Create(&a).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			return models.Announcement{}, ErrDuplicateTitle
		}
		return models.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return a, nil
}

func (s *AnnouncementService) List() ([]models.Announcement, error) {
	var list []models.Announcement
	err := s.DB.Order("id").Find(&list).Error
	return list, err
}

func (s *AnnouncementService) Delete(id uint) error {
	result := s.DB.Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}
