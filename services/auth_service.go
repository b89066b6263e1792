package services

import (
	"errors"

	"github.com/Manish9250/calorie-tracker-app/models"
	"github.com/Manish9250/calorie-tracker-app/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type LoginResult struct {
	Created bool
	Token   string
}

// Login authenticates a username/password pair. An unseen username is
// registered on the spot with the supplied password.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, hashErr := utils.HashPassword(password)
		if hashErr != nil {
			return nil, hashErr
		}
		user = models.User{Username: username, Password: hashed}
		if createErr := s.db.Create(&user).Error; createErr != nil {
			return nil, createErr
		}
		token, tokenErr := utils.GenerateJWT(username)
		if tokenErr != nil {
			return nil, tokenErr
		}
		return &LoginResult{Created: true, Token: token}, nil
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrIncorrectPassword
	}

	token, err := utils.GenerateJWT(username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token}, nil
}

func findUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
