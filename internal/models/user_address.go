package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserAddress struct {
	ID           string `gorm:"size:36;primaryKey" json:"id"`
	UserID       string `gorm:"size:36;not null;index" json:"user_id"`
	AddressLine1 string `gorm:"size:255" json:"address_line_1"`
	AddressLine2 string `gorm:"size:255" json:"address_line_2,omitempty"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state,omitempty"`
	Country      string `gorm:"size:100" json:"country"`
	PostCode     string `gorm:"size:20" json:"post_code"`
	IsPrimary    bool   `gorm:"not null;default:true" json:"is_primary"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *UserAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
