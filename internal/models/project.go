package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID          string `gorm:"size:36;primaryKey" json:"id"`
	UserID      string `gorm:"size:36;not null;index" json:"user_id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`

	AttachmentURLs datatypes.JSONSlice[string] `json:"attachment_urls,omitempty"`
	CodeURL        string                      `gorm:"size:500" json:"code_url,omitempty"`
	LiveURL        string                      `gorm:"size:500" json:"live_url,omitempty"`

	GithubRepoPath       string `gorm:"size:200" json:"github_repo_path,omitempty"`
	GithubInstallationID string `gorm:"size:100" json:"github_installation_id,omitempty"`

	// HackatimeProjects and HackatimeHours are written together by
	// HackatimeService.SetProjectLinks, never independently.
	HackatimeProjects datatypes.JSONSlice[string] `json:"hackatime_projects,omitempty"`
	HackatimeHours    *float64                    `json:"hackatime_hours,omitempty"`

	Shipped   bool      `gorm:"not null;default:false" json:"shipped"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews []Review `gorm:"foreignKey:ProjectID" json:"reviews,omitempty"`
	Votes   []Vote   `gorm:"foreignKey:ProjectID" json:"votes,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
