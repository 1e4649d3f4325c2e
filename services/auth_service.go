package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a non-admin account with a bcrypt-hashed password.
// Admin accounts only come from seeding.
func (s *AuthService) Register(username, email, password string) (models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Admin:    false,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			var count int64
			s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
			if count > 0 {
				return models.User{}, ErrUsernameTaken
			}
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate resolves a username/password pair to the user record.
func (s *AuthService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetByID(id uint) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	return user, err
}

// ListUsers returns every registered account for the admin directory.
func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("users.id").Find(&users).Error
	return users, err
}
