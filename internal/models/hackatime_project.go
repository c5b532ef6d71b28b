package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HackatimeProject is one time-tracking bucket pulled from the Hackatime
// API. Rows are upserted wholesale by the sync client; seconds only grows.
type HackatimeProject struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	UserID    string    `gorm:"size:36;not null;index:idx_hackatime_user_name,unique" json:"user_id"`
	Name      string    `gorm:"size:255;not null;index:idx_hackatime_user_name,unique" json:"name"`
	Seconds   int       `gorm:"not null;default:0" json:"seconds"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (h *HackatimeProject) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
