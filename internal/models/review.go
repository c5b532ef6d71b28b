package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID             string    `gorm:"size:36;primaryKey" json:"id"`
	ReviewerUserID string    `gorm:"size:36;not null;index" json:"reviewer_user_id"`
	ProjectID      string    `gorm:"size:36;not null;index" json:"project_id"`
	Comments       string    `gorm:"type:text;not null" json:"comments"`
	Decision       string    `gorm:"size:50;not null" json:"decision"`
	CreatedAt      time.Time `json:"created_at"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

const (
	ReviewDecisionApproved = "approved"
	ReviewDecisionRejected = "rejected"
	ReviewDecisionFlagged  = "flagged"
	ReviewDecisionPending  = "pending"
)

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
