package models

import "time"

type UserProfile struct {
	UserID    string     `gorm:"size:36;primaryKey" json:"user_id"`
	FirstName string     `gorm:"size:100;not null" json:"first_name"`
	LastName  string     `gorm:"size:100" json:"last_name,omitempty"`
	Bio       string     `gorm:"size:1000" json:"bio,omitempty"`
	AvatarURL string     `gorm:"size:500" json:"avatar_url,omitempty"`
	IsPublic  bool       `gorm:"not null;default:false" json:"is_public"`
	Birthday  *time.Time `json:"birthday,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
