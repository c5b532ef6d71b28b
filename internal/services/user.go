package services

import (
	"errors"
	"time"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type ProfileInput struct {
	FirstName string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string     `json:"last_name" binding:"max=100"`
	Bio       string     `json:"bio" binding:"max=1000"`
	AvatarURL string     `json:"avatar_url" binding:"max=500"`
	IsPublic  bool       `json:"is_public"`
	Birthday  *time.Time `json:"birthday"`
}

func (s *UserService) UpsertProfile(userID string, input ProfileInput) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
		IsPublic:  input.IsPublic,
		Birthday:  input.Birthday,
	}
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *UserService) GetProfile(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

type AddressInput struct {
	AddressLine1 string `json:"address_line_1" binding:"required,min=1,max=255"`
	AddressLine2 string `json:"address_line_2" binding:"max=255"`
	City         string `json:"city" binding:"max=100"`
	State        string `json:"state" binding:"max=100"`
	Country      string `json:"country" binding:"max=100"`
	PostCode     string `json:"post_code" binding:"max=20"`
}

// UpsertPrimaryAddress replaces the user's primary address in place so
// there is never more than one primary row per user.
func (s *UserService) UpsertPrimaryAddress(userID string, input AddressInput) (*models.UserAddress, error) {
	var address models.UserAddress
	err := s.db.Where("user_id = ? AND is_primary = ?", userID, true).First(&address).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	address.UserID = userID
	address.AddressLine1 = input.AddressLine1
	address.AddressLine2 = input.AddressLine2
	address.City = input.City
	address.State = input.State
	address.Country = input.Country
	address.PostCode = input.PostCode
	address.IsPrimary = true

	if err := s.db.Save(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *UserService) GetPrimaryAddress(userID string) (*models.UserAddress, error) {
	var address models.UserAddress
	if err := s.db.Where("user_id = ? AND is_primary = ?", userID, true).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}
