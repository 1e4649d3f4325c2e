package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/models"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the settings row, or a zero value when none exists yet.
func (s *SettingsService) Get() (models.PortalSetting, error) {
	var setting models.PortalSetting
	if err := s.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PortalSetting{}, nil
		}
		return models.PortalSetting{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return setting, nil
}

// Update overwrites the singleton row, creating it on first save.
func (s *SettingsService) Update(incoming models.PortalSetting) (models.PortalSetting, error) {
	var setting models.PortalSetting
	err := s.DB.First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PortalSetting{}, fmt.Errorf("failed to load settings: %w", err)
		}
		setting = incoming
		if err := s.DB.Create(&setting).Error; err != nil {
			return models.PortalSetting{}, fmt.Errorf("failed to create settings: %w", err)
		}
		return setting, nil
	}

	setting.Name = incoming.Name
	setting.Address = incoming.Address
	setting.Phone = incoming.Phone
	setting.Email = incoming.Email
	setting.ContactInfo = incoming.ContactInfo
	setting.MessTimings = incoming.MessTimings
	if err := s.DB.Save(&setting).Error; err != nil {
		return models.PortalSetting{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return setting, nil
}
