package services

import (
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

type MessService struct {
	DB *gorm.DB
}

func NewMessService(db *gorm.DB) *MessService {
	return &MessService{DB: db}
}

func (s *MessService) Create(mess *models.Mess) error {
	if err := s.DB.Create(mess).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create mess plan: %w", err)
	}
	return nil
}

func (s *MessService) GetAll() ([]models.Mess, error) {
	var messes []models.Mess
	err := s.DB.Order("id").Find(&messes).Error
	return messes, err
}

func (s *MessService) GetByID(id uint) (models.Mess, error) {
	var mess models.Mess
	err := s.DB.First(&mess, id).Error
	return mess, err
}

func (s *MessService) Update(id uint, fields map[string]interface{}) error {
	return s.DB.Model(&models.Mess{}).Where("id = ?", id).Updates(fields).Error
}

func (s *MessService) Delete(id uint) error {
	result := s.DB.Delete(&models.Mess{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessNotFound
	}
	return nil
}
