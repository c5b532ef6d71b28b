package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vote struct {
	ID          string    `gorm:"size:36;primaryKey" json:"id"`
	VoterUserID string    `gorm:"size:36;not null;index:idx_vote_voter_project,unique" json:"voter_user_id"`
	ProjectID   string    `gorm:"size:36;not null;index:idx_vote_voter_project,unique" json:"project_id"`
	CreatedAt   time.Time `json:"created_at"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
